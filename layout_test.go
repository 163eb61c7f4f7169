package calpdf

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestBlockOrigins(t *testing.T) {
	want := []Point{
		{72, 136}, {225, 136}, {378, 136},
		{72, 272}, {225, 272}, {378, 272},
		{72, 408}, {225, 408}, {378, 408},
		{72, 544}, {225, 544}, {378, 544},
	}
	got := make([]Point, 12)
	for m := range got {
		got[m] = BlockOrigin(m)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("block origins mismatch (-want +got):\n%s", diff)
	}
}

func TestHeaderBarPDF(t *testing.T) {
	got := HeaderBar(0).PDF()
	want := Rect{X: 72, Y: 688, W: 145, H: 18}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("header bar mismatch (-want +got):\n%s", diff)
	}
	got = HeaderBar(11).PDF()
	want = Rect{X: 378, Y: 842 - 562, W: 145, H: 18}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("december bar mismatch (-want +got):\n%s", diff)
	}
}

func TestMonthNameCentred(t *testing.T) {
	at := MonthNameAt(4, 45)
	if at.X != 225+50 || at.Y != 286 {
		t.Fatalf("unexpected month name position %+v", at)
	}
}

func TestWeekdayLabels(t *testing.T) {
	labels := WeekdayLabels(0)
	var texts []string
	for i, l := range labels {
		texts = append(texts, l.Text)
		if want := 79 + float64(i)*21; l.At.X != want || l.At.Y != 166 {
			t.Fatalf("label %d at %+v, want x=%v y=166", i, l.At, want)
		}
	}
	if diff := cmp.Diff([]string{"S", "M", "T", "W", "T", "F", "S"}, texts); diff != "" {
		t.Fatalf("weekday letters mismatch (-want +got):\n%s", diff)
	}
}

func TestDayCell(t *testing.T) {
	cases := []struct {
		day      int
		first    time.Weekday
		col, row int
	}{
		{1, time.Sunday, 0, 0},
		{1, time.Saturday, 6, 0},
		{2, time.Saturday, 0, 1},
		{31, time.Saturday, 1, 5},
		{28, time.Sunday, 6, 3},
	}
	for _, tc := range cases {
		col, row := DayCell(tc.day, tc.first)
		if col != tc.col || row != tc.row {
			t.Fatalf("DayCell(%d, %s) = (%d, %d), want (%d, %d)", tc.day, tc.first, col, row, tc.col, tc.row)
		}
	}
}

func TestDayLabelsJanuary2024(t *testing.T) {
	labels := DayLabels(Months(2024)[0])
	if len(labels) != 31 {
		t.Fatalf("expected 31 labels, got %d", len(labels))
	}
	want := []Label{
		{Text: "1", At: Point{X: 102, Y: 180}},
		{Text: "2", At: Point{X: 123, Y: 180}},
	}
	if diff := cmp.Diff(want, labels[:2]); diff != "" {
		t.Fatalf("first labels mismatch (-want +got):\n%s", diff)
	}
	// Sunday 7th wraps to the next row, Wednesday 10th has no single-digit inset
	if l := labels[6]; l.At != (Point{X: 81, Y: 194}) {
		t.Fatalf("unexpected position of 7: %+v", l.At)
	}
	if l := labels[9]; l.At != (Point{X: 138, Y: 194}) {
		t.Fatalf("unexpected position of 10: %+v", l.At)
	}
	if l := labels[30]; l.Text != "31" || l.At != (Point{X: 138, Y: 236}) {
		t.Fatalf("unexpected last label: %+v", l)
	}
}

func TestTitleAndFooter(t *testing.T) {
	at := TitleAt(80)
	if at.X+TitleScale*80 != PageWidth-at.X {
		t.Fatalf("title not centred: %+v", at)
	}
	if at.PDF().Y != 740 {
		t.Fatalf("unexpected title baseline %v", at.PDF().Y)
	}
	first, second := FooterAt(0, 100), FooterAt(1, 50)
	if first.X+100 != FooterRight || second.X+50 != FooterRight {
		t.Fatalf("footer not right aligned: %+v %+v", first, second)
	}
	if first.PDF().Y != 116 || second.PDF().Y != 102 {
		t.Fatalf("unexpected footer baselines %+v %+v", first.PDF(), second.PDF())
	}
}
