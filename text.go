package calpdf

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/padding"
)

const (
	textMonthWidth = 20
	textGap        = 3
	textWeekRows   = 6
	maxTextColumns = GridColumns
)

// TextRequest configures a text rendering of a year calendar.
type TextRequest struct {
	Writer io.Writer
	Year   int
	// Width is the terminal width in columns. Zero lays out three months
	// per row.
	Width   int
	Theme   Theme
	Options []TextOption
}

// RenderText writes the calendar of a year as plain or ANSI-styled text, in
// the same month order and weekday layout as the PDF page.
func RenderText(req TextRequest) error {
	if req.Writer == nil {
		return errors.New("calpdf: writer is nil")
	}
	if err := ValidateYear(req.Year); err != nil {
		return err
	}
	cfg := textConfig{}
	for _, opt := range req.Options {
		opt(&cfg)
	}
	theme := req.Theme
	if theme == nil {
		theme = DefaultTheme()
	}
	styles := theme.Styles()
	columns := textColumns(cfg.columns, req.Width)

	months := Months(req.Year)
	today := -1
	todayMonth := -1
	if !cfg.today.IsZero() && cfg.today.Year() == req.Year {
		todayMonth = int(cfg.today.Month()) - 1
		today = cfg.today.Day()
	}

	var b strings.Builder
	lineWidth := columns*textMonthWidth + (columns-1)*textGap
	b.WriteString(strings.TrimRight(center(styles.Title.Render(strconv.Itoa(req.Year)), lineWidth), " "))
	b.WriteString("\n\n")

	for first := 0; first < len(months); first += columns {
		last := min(first+columns, len(months))
		row := months[first:last]

		cells := make([]string, len(row))
		for i, month := range row {
			cells[i] = center(styles.MonthName.Render(month.Name), textMonthWidth)
		}
		writeTextLine(&b, cells)

		for i := range row {
			cells[i] = weekdayHeading(styles)
		}
		writeTextLine(&b, cells)

		for week := 0; week < textWeekRows; week++ {
			for i, month := range row {
				highlight := -1
				if month.Index == todayMonth {
					highlight = today
				}
				cells[i] = weekLine(month, week, highlight, styles)
			}
			writeTextLine(&b, cells)
		}
		if last < len(months) {
			b.WriteByte('\n')
		}
	}

	if _, err := io.WriteString(req.Writer, b.String()); err != nil {
		return fmt.Errorf("calpdf: write text: %w", err)
	}
	return nil
}

func textColumns(fixed, width int) int {
	if fixed > 0 {
		return min(fixed, maxTextColumns)
	}
	if width <= 0 {
		return maxTextColumns
	}
	n := (width + textGap) / (textMonthWidth + textGap)
	return max(1, min(n, maxTextColumns))
}

// center pads s on both sides to width printable cells. ANSI sequences do
// not count towards the width.
func center(s string, width int) string {
	left := (width - ansi.PrintableRuneWidth(s)) / 2
	if left > 0 {
		s = strings.Repeat(" ", left) + s
	}
	return padding.String(s, uint(width))
}

func weekdayHeading(styles Styles) string {
	letters := make([]string, len(WeekdayLetters))
	for i, l := range WeekdayLetters {
		letters[i] = " " + l
	}
	// 7 cells of 2 plus 6 separators
	return padding.String(styles.Weekday.Render(strings.Join(letters, " ")), textMonthWidth)
}

func weekLine(month Month, week, today int, styles Styles) string {
	var b strings.Builder
	for col := 0; col < 7; col++ {
		if col > 0 {
			b.WriteByte(' ')
		}
		day := week*7 + col - int(month.FirstWeekday) + 1
		if day < 1 || day > month.Days {
			b.WriteString("  ")
			continue
		}
		label := fmt.Sprintf("%2d", day)
		switch {
		case day == today:
			label = styles.Today.Render(label)
		case col == int(time.Sunday) || col == int(time.Saturday):
			if styles.Weekend.Prefix != "" {
				label = styles.Weekend.Render(label)
			} else {
				label = styles.Day.Render(label)
			}
		default:
			label = styles.Day.Render(label)
		}
		b.WriteString(label)
	}
	return b.String()
}

func writeTextLine(b *strings.Builder, cells []string) {
	line := strings.Join(cells, strings.Repeat(" ", textGap))
	b.WriteString(strings.TrimRight(line, " "))
	b.WriteByte('\n')
}
