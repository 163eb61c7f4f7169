package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"pkt.systems/calpdf"
)

var (
	defaultYears  = []int{1900, 2024, 2300}
	defaultWidths = []int{20, 50, 80}
)

func main() {
	root := "testdata"
	targets := map[int][]int{}
	entries, err := os.ReadDir(root)
	if err != nil && !os.IsNotExist(err) {
		fatalf("read %s: %v", root, err)
	}
	for _, e := range entries {
		if year, width, ok := parseGoldenName(e.Name()); ok {
			targets[year] = append(targets[year], width)
		}
	}
	if len(targets) == 0 {
		for _, year := range defaultYears {
			targets[year] = defaultWidths
		}
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		fatalf("mkdir %s: %v", root, err)
	}
	theme, _ := calpdf.ThemeByName("boring")
	for year, widths := range targets {
		for _, width := range widths {
			var out bytes.Buffer
			err := calpdf.RenderText(calpdf.TextRequest{
				Writer: &out,
				Year:   year,
				Width:  width,
				Theme:  theme,
			})
			if err != nil {
				fatalf("render %d width %d: %v", year, width, err)
			}
			path := filepath.Join(root, goldenName(year, width))
			if err := os.WriteFile(path, out.Bytes(), 0o644); err != nil {
				fatalf("write %s: %v", path, err)
			}
			fmt.Fprintf(os.Stdout, "wrote %s\n", path)
		}
	}
}

func goldenName(year, width int) string {
	return fmt.Sprintf("%d.w%d.golden", year, width)
}

func parseGoldenName(name string) (year, width int, ok bool) {
	name, found := strings.CutSuffix(name, ".golden")
	if !found {
		return 0, 0, false
	}
	yearPart, widthPart, found := strings.Cut(name, ".w")
	if !found {
		return 0, 0, false
	}
	year, err := strconv.Atoi(yearPart)
	if err != nil || calpdf.ValidateYear(year) != nil {
		return 0, 0, false
	}
	width, err = strconv.Atoi(widthPart)
	if err != nil || width <= 0 {
		return 0, 0, false
	}
	return year, width, true
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
