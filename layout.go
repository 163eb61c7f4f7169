package calpdf

import (
	"strconv"
	"time"
)

// Page geometry in points. Logical coordinates have their origin at the top
// left corner of the page with y growing downwards.
const (
	PageWidth  = 595.0
	PageHeight = 842.0

	GridColumns = 3
	GridRows    = 4

	LeftMargin  = 72.0
	TopMargin   = 136.0
	BlockWidth  = 153.0
	BlockHeight = 136.0

	HeaderBarWidth  = 145.0
	HeaderBarHeight = 18.0
	HeaderShade     = 0.95

	MonthNameBaseline  = 14.0
	GridInset          = 3.0
	WeekdayLabelInset  = 4.0
	WeekdayRowBaseline = 30.0
	ColumnWidth        = 21.0
	RowHeight          = 14.0
	SingleDigitInset   = 6.0

	TitleBaseline = 102.0
	TitleScale    = 2.0
	FooterRight   = 523.0

	TitleFontSize     = 40.0
	MonthNameFontSize = 16.0
	GridFontSize      = 12.0
	FooterFontSize    = 9.0
)

var footerBaselines = [2]float64{726, 740}

// Point is a position on the page in logical coordinates.
type Point struct {
	X, Y float64
}

// PDF converts p to PDF user space, where the origin is the bottom left
// corner of the page.
func (p Point) PDF() Point {
	return Point{X: p.X, Y: Invert(p.Y)}
}

// Invert maps a logical y coordinate to PDF user space and back.
func Invert(y float64) float64 {
	return PageHeight - y
}

// Rect is an axis-aligned rectangle in logical coordinates, (X, Y) being
// its top left corner.
type Rect struct {
	X, Y, W, H float64
}

// PDF returns the rectangle in PDF user space, (X, Y) being its bottom left
// corner.
func (r Rect) PDF() Rect {
	return Rect{X: r.X, Y: Invert(r.Y + r.H), W: r.W, H: r.H}
}

// Label is a string placed with its baseline origin at At.
type Label struct {
	Text string
	At   Point
}

// BlockOrigin returns the top left corner of the block of month m (0-11).
func BlockOrigin(m int) Point {
	col, row := m%GridColumns, m/GridColumns
	return Point{
		X: LeftMargin + float64(col)*BlockWidth,
		Y: TopMargin + float64(row)*BlockHeight,
	}
}

// HeaderBar returns the shaded bar behind the name of month m.
func HeaderBar(m int) Rect {
	o := BlockOrigin(m)
	return Rect{X: o.X, Y: o.Y, W: HeaderBarWidth, H: HeaderBarHeight}
}

// MonthNameAt returns the baseline origin that centres a month name of the
// given width inside the header bar of month m.
func MonthNameAt(m int, textWidth float64) Point {
	o := BlockOrigin(m)
	return Point{
		X: o.X + (HeaderBarWidth-textWidth)/2,
		Y: o.Y + MonthNameBaseline,
	}
}

// WeekdayLabels returns the weekday headings of month m, Sunday first.
func WeekdayLabels(m int) [7]Label {
	o := BlockOrigin(m)
	var labels [7]Label
	for d := range labels {
		labels[d] = Label{
			Text: WeekdayLetters[d],
			At: Point{
				X: o.X + GridInset + WeekdayLabelInset + float64(d)*ColumnWidth,
				Y: o.Y + WeekdayRowBaseline,
			},
		}
	}
	return labels
}

// DayCell returns the grid cell of day (1-based) in a month starting on
// first. Rows count from 0 below the weekday headings.
func DayCell(day int, first time.Weekday) (col, row int) {
	offset := int(first) + day - 1
	return offset % 7, offset / 7
}

// DayLabels returns the labels of all days of month.
func DayLabels(month Month) []Label {
	o := BlockOrigin(month.Index)
	labels := make([]Label, 0, month.Days)
	for day := 1; day <= month.Days; day++ {
		col, row := DayCell(day, month.FirstWeekday)
		x := o.X + GridInset + float64(col)*ColumnWidth
		if day < 10 {
			x += SingleDigitInset
		}
		labels = append(labels, Label{
			Text: strconv.Itoa(day),
			At: Point{
				X: x,
				Y: o.Y + WeekdayRowBaseline + float64(row+1)*RowHeight,
			},
		})
	}
	return labels
}

// TitleAt returns the baseline origin of the year title. textWidth is the
// unscaled width; the title is stretched by TitleScale horizontally, which
// centres it on the page.
func TitleAt(textWidth float64) Point {
	return Point{X: PageWidth/2 - textWidth, Y: TitleBaseline}
}

// FooterAt returns the baseline origin of footer line (0 or 1) right-aligned
// at FooterRight.
func FooterAt(line int, textWidth float64) Point {
	return Point{X: FooterRight - textWidth, Y: footerBaselines[line]}
}
