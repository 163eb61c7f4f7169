package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"golang.org/x/term"
	"pkt.systems/calpdf"
	"pkt.systems/calpdf/pdf"
	"pkt.systems/calpdf/raster"
	"pkt.systems/version"
)

const (
	defaultThemeName = "default"
	defaultWidth     = 80
	stdoutPath       = "-"
)

func init() {
	version.SetDefaultModule("pkt.systems/calpdf")
}

// now is replaced in tests.
var now = time.Now

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var (
		outPath      string
		uncompressed bool
		pngPath      string
		pngScale     float64
		creationDate string
		textMode     bool
		themeName    string
		listThemes   bool
		boring       bool
		widthFlag    int
		verbose      bool
		showVersion  bool
	)

	flags := pflag.NewFlagSet("calpdf", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVarP(&outPath, "output", "o", "", "Output PDF path (default <year>.pdf, - for stdout)")
	flags.BoolVar(&uncompressed, "uncompressed", false, "Do not compress PDF content streams")
	flags.StringVar(&pngPath, "png", "", "Also write a PNG preview to this path")
	flags.Float64Var(&pngScale, "png-scale", 1, "Pixels per point of the PNG preview")
	flags.StringVar(&creationDate, "creation-date", "", "Fixed PDF creation date (RFC 3339 or YYYY-MM-DD)")
	flags.BoolVarP(&textMode, "text", "T", false, "Print the calendar as text instead of writing a PDF")
	flags.StringVarP(&themeName, "theme", "t", defaultThemeName, "Text theme name")
	flags.BoolVar(&listThemes, "list-themes", false, "List available text themes")
	flags.BoolVarP(&boring, "boring", "b", false, "Generate text without ANSI styles")
	flags.IntVarP(&widthFlag, "width", "w", 0, "Text width override (0 uses terminal width if available)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Log rendering steps to stderr")
	flags.BoolVar(&showVersion, "version", false, "Print version and exit")

	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(stderr, version.Module(), version.Current())
		fmt.Fprintf(stderr, "Usage: calpdf [flags] <year>\n")
		fmt.Fprintf(stderr, "\nWrites a one-page calendar of <year> (%d-%d) to <year>.pdf.\n", calpdf.MinYear, calpdf.MaxYear)
		fmt.Fprintln(stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(protectNegativeArgs(flags, args)); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(stderr, err)
		flags.Usage()
		return 2
	}

	if showVersion {
		fmt.Fprintln(stdout, version.Module(), version.Current())
		return 0
	}
	if listThemes {
		printThemes(stdout)
		return 0
	}
	if verbose {
		calpdf.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		defer calpdf.SetLogger(nil)
	}

	if flags.NArg() == 0 {
		flags.Usage()
		return 0
	}
	year, err := calpdf.ParseYear(flags.Arg(0))
	if err != nil {
		fmt.Fprintln(stdout, "Year out of range")
		return 0
	}

	if textMode {
		theme, ok := calpdf.ThemeByName(themeName)
		if !ok {
			fmt.Fprintf(stderr, "unknown theme %q\n\n", themeName)
			printThemes(stderr)
			return 2
		}
		if boring {
			theme, _ = calpdf.ThemeByName("boring")
		}
		if err := calpdf.RenderText(calpdf.TextRequest{
			Writer:  stdout,
			Year:    year,
			Width:   resolveWidth(stdout, widthFlag),
			Theme:   theme,
			Options: []calpdf.TextOption{calpdf.WithToday(now())},
		}); err != nil {
			return fatal(stderr, err)
		}
		return 0
	}

	cfg := pdf.DefaultConfig()
	cfg.Uncompressed = uncompressed
	if creationDate != "" {
		date, err := parseDate(creationDate)
		if err != nil {
			fmt.Fprintf(stderr, "invalid --creation-date %q: %v\n", creationDate, err)
			return 2
		}
		cfg.CreationDate = date
	}
	renderPDF := func(w io.Writer) error {
		return pdf.Render(pdf.RenderRequest{Writer: w, Year: year, Config: cfg})
	}

	// The preview is staged first so a failure leaves neither file behind.
	var preview *stagedFile
	if pngPath != "" {
		preview, err = stageFile(normalizePath(pngPath), func(w io.Writer) error {
			return raster.Render(raster.RenderRequest{
				Writer: w,
				Year:   year,
				Config: raster.Config{Scale: pngScale},
			})
		})
		if err != nil {
			return fatal(stderr, err)
		}
		defer preview.discard()
	}

	if outPath == stdoutPath {
		if isTerminal(stdout) {
			fmt.Fprintln(stderr, "refusing to write PDF to terminal; use -o/--output")
			return 2
		}
		if err := renderPDF(stdout); err != nil {
			return fatal(stderr, err)
		}
	} else {
		target := strconv.Itoa(year) + ".pdf"
		if strings.TrimSpace(outPath) != "" {
			target = normalizePath(outPath)
		}
		doc, err := stageFile(target, renderPDF)
		if err != nil {
			return fatal(stderr, err)
		}
		if err := doc.commit(); err != nil {
			return fatal(stderr, err)
		}
		calpdf.Logger().Info("calendar written", "path", target)
	}

	if preview != nil {
		if err := preview.commit(); err != nil {
			return fatal(stderr, err)
		}
		calpdf.Logger().Info("preview written", "path", preview.path)
	}
	return 0
}

// fatal reports err with the numeric code of the failed stage. Errors that
// did not come from composing the page are reported as output failures.
func fatal(w io.Writer, err error) int {
	code, detail := uint16(0x1000)|uint16(calpdf.StageOutput)<<4, -1
	var rerr *calpdf.RenderError
	if errors.As(err, &rerr) {
		code, detail = rerr.Code(), rerr.Detail()
	}
	fmt.Fprintf(w, "ERROR: code=%04X detail=%d: %v\n", code, detail, err)
	return 1
}

// stagedFile is a fully rendered temporary file waiting to be renamed to
// path.
type stagedFile struct {
	path string
	tmp  string
	done bool
}

// stageFile renders into a temporary file next to path. Nothing is left
// behind when render fails.
func stageFile(path string, render func(io.Writer) error) (_ *stagedFile, err error) {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()
	if err = render(tmp); err != nil {
		return nil, err
	}
	if err = tmp.Chmod(0o644); err != nil {
		return nil, err
	}
	if err = tmp.Close(); err != nil {
		return nil, err
	}
	return &stagedFile{path: path, tmp: tmp.Name()}, nil
}

func (f *stagedFile) commit() error {
	if err := os.Rename(f.tmp, f.path); err != nil {
		f.discard()
		return err
	}
	f.done = true
	return nil
}

// discard removes the temporary file unless it was committed.
func (f *stagedFile) discard() {
	if f.done {
		return
	}
	f.done = true
	_ = os.Remove(f.tmp)
}

// protectNegativeArgs moves positional arguments behind "--" when one of them
// is a negative number, so "-5" reaches the year check instead of being read
// as a shorthand flag. Values of flags that take one are left in place.
func protectNegativeArgs(flags *pflag.FlagSet, args []string) []string {
	var (
		opts       []string
		positional []string
		negative   bool
	)
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			positional = append(positional, args[i+1:]...)
			i = len(args)
		case isNegativeNumber(arg):
			negative = true
			positional = append(positional, arg)
		case len(arg) > 1 && arg[0] == '-':
			opts = append(opts, arg)
			if consumesNext(flags, arg) && i+1 < len(args) {
				i++
				opts = append(opts, args[i])
			}
		default:
			positional = append(positional, arg)
		}
	}
	if !negative {
		return args
	}
	return append(append(opts, "--"), positional...)
}

func isNegativeNumber(arg string) bool {
	n, err := strconv.Atoi(arg)
	return err == nil && n < 0
}

// consumesNext reports whether the flag argument arg expects its value in
// the following argument.
func consumesNext(flags *pflag.FlagSet, arg string) bool {
	takesValue := func(f *pflag.Flag) bool { return f != nil && f.NoOptDefVal == "" }
	if name, ok := strings.CutPrefix(arg, "--"); ok {
		return !strings.Contains(name, "=") && takesValue(flags.Lookup(name))
	}
	shorthands := arg[1:]
	for i := 0; i < len(shorthands); i++ {
		f := flags.ShorthandLookup(shorthands[i : i+1])
		if f == nil {
			return false
		}
		if takesValue(f) {
			return i == len(shorthands)-1
		}
	}
	return false
}

func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse(time.DateOnly, value)
}

func printThemes(w io.Writer) {
	for _, name := range calpdf.AvailableThemes() {
		fmt.Fprintln(w, name)
	}
}

func resolveWidth(w io.Writer, width int) int {
	if width > 0 {
		return width
	}
	return terminalWidth(w, defaultWidth)
}

func terminalWidth(w io.Writer, fallback int) int {
	if f, ok := w.(*os.File); ok {
		fd := int(f.Fd())
		if term.IsTerminal(fd) {
			if width, _, err := term.GetSize(fd); err == nil && width > 0 {
				return width
			}
		}
	}
	if value := os.Getenv("COLUMNS"); value != "" {
		if width, err := strconv.Atoi(value); err == nil && width > 0 {
			return width
		}
	}
	return fallback
}

func normalizePath(path string) string {
	if strings.HasPrefix(path, "~/") || path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			if path == "~" {
				path = home
			} else {
				path = filepath.Join(home, path[2:])
			}
		}
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		return abs
	}
	return path
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
