package calpdf

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var errInjected = errors.New("injected failure")

// recorder is a Canvas that records every call as a short string.
type recorder struct {
	ops    []string
	size   float64
	err    error
	failOn func(op string) bool
}

func (r *recorder) record(format string, args ...any) {
	if r.err != nil {
		return
	}
	op := fmt.Sprintf(format, args...)
	r.ops = append(r.ops, op)
	if r.failOn != nil && r.failOn(op) {
		r.err = errInjected
	}
}

func (r *recorder) SetFillGray(g float64)           { r.record("gray %g", g) }
func (r *recorder) FillRect(x, y, w, h float64)    { r.record("rect %g %g %g %g", x, y, w, h) }
func (r *recorder) SaveState()                     { r.record("save") }
func (r *recorder) RestoreState()                  { r.record("restore") }
func (r *recorder) BeginText()                     { r.record("begin") }
func (r *recorder) EndText()                       { r.record("end") }
func (r *recorder) TextOut(x, y float64, s string) { r.record("text %g %g %s", x, y, s) }
func (r *recorder) SetTextMatrix(m Matrix)         { r.record("matrix %g", m) }
func (r *recorder) ShowText(s string)              { r.record("show %s", s) }
func (r *recorder) Err() error                     { return r.err }

func (r *recorder) SetFont(font Font, size float64) {
	r.size = size
	r.record("font %s %g", font, size)
}

// TextWidth uses a fixed advance of half the font size per byte.
func (r *recorder) TextWidth(s string) float64 {
	return float64(len(s)) * r.size / 2
}

func (r *recorder) count(prefix string) int {
	n := 0
	for _, op := range r.ops {
		if strings.HasPrefix(op, prefix) {
			n++
		}
	}
	return n
}

func TestComposeOrder(t *testing.T) {
	r := &recorder{}
	if err := Compose(r, 2024); err != nil {
		t.Fatalf("compose: %v", err)
	}
	head := []string{
		"save",
		"begin",
		"font body 40",
		"matrix [2 0 0 1 217.5 740]",
		"show 2024",
		"end",
		"restore",
		"save",
		"gray 0.95",
		"rect 72 688 145 18",
	}
	if diff := cmp.Diff(head, r.ops[:len(head)]); diff != "" {
		t.Fatalf("composition head mismatch (-want +got):\n%s", diff)
	}
	tail := []string{
		"save",
		"begin",
		"font body 9",
		fmt.Sprintf("text %g 116 %s", FooterRight-float64(len(DefaultFooter[0]))*4.5, DefaultFooter[0]),
		fmt.Sprintf("text %g 102 %s", FooterRight-float64(len(DefaultFooter[1]))*4.5, DefaultFooter[1]),
		"end",
		"restore",
	}
	if diff := cmp.Diff(tail, r.ops[len(r.ops)-len(tail):]); diff != "" {
		t.Fatalf("composition tail mismatch (-want +got):\n%s", diff)
	}
	if got := r.count("rect "); got != 12 {
		t.Fatalf("expected 12 header bars, got %d", got)
	}
	if got := r.count("font grid 12"); got != 12 {
		t.Fatalf("expected 12 weekday rows, got %d", got)
	}
	if got := r.count("begin"); got != 1+1+12+1 {
		t.Fatalf("unexpected number of text objects: %d", got)
	}
	if got, want := r.count("text "), 12+12*7+366+2; got != want {
		t.Fatalf("expected %d text labels, got %d", want, got)
	}
}

func TestComposeMonthNamesCentred(t *testing.T) {
	r := &recorder{}
	if err := Compose(r, 2024); err != nil {
		t.Fatalf("compose: %v", err)
	}
	// "May" is 3 bytes at 8pt per byte: (145 - 24) / 2
	want := "text 285.5 556 May"
	for _, op := range r.ops {
		if op == want {
			return
		}
	}
	t.Fatalf("expected %q in %v", want, r.ops)
}

func monthOps(ops []string, month int) []string {
	seen := -1
	var out []string
	for i, op := range ops {
		if op == "font grid 12" {
			seen++
		}
		if seen == month {
			if op == "end" {
				return out
			}
			out = append(out, ops[i])
		}
	}
	return out
}

func TestComposeFebruaryLeap(t *testing.T) {
	cases := map[int]int{2024: 29, 1900: 28, 2000: 29, 2100: 28}
	for year, days := range cases {
		r := &recorder{}
		if err := Compose(r, year); err != nil {
			t.Fatalf("compose %d: %v", year, err)
		}
		feb := monthOps(r.ops, 1)
		// grid font, 7 letters, body font, days
		if got := len(feb) - 9; got != days {
			t.Fatalf("%d: February has %d day labels, want %d", year, got, days)
		}
		if !strings.HasSuffix(feb[len(feb)-1], fmt.Sprintf(" %d", days)) {
			t.Fatalf("%d: unexpected last February label %q", year, feb[len(feb)-1])
		}
	}
}

func TestComposeSingleDigitInset(t *testing.T) {
	r := &recorder{}
	if err := Compose(r, 2023); err != nil {
		t.Fatalf("compose: %v", err)
	}
	// 1 January 2023 is a Sunday; 8 and 15 share its column
	jan := monthOps(r.ops, 0)
	wants := []string{"text 81 662 1", "text 81 648 8", "text 75 634 15"}
	for _, want := range wants {
		found := false
		for _, op := range jan {
			if op == want {
				found = true
			}
		}
		if !found {
			t.Fatalf("expected %q in %v", want, jan)
		}
	}
}

func TestComposeFooterOption(t *testing.T) {
	r := &recorder{}
	if err := Compose(r, 2024, WithFooter([2]string{"a", "bb"})); err != nil {
		t.Fatalf("compose: %v", err)
	}
	tail := r.ops[len(r.ops)-4 : len(r.ops)-2]
	want := []string{"text 518.5 116 a", "text 514 102 bb"}
	if diff := cmp.Diff(want, tail); diff != "" {
		t.Fatalf("footer mismatch (-want +got):\n%s", diff)
	}
}

func TestComposeStopsAtFailedStage(t *testing.T) {
	cases := []struct {
		name   string
		failOn func(string) bool
		stage  Stage
		month  int
	}{
		{"title", func(op string) bool { return op == "show 2024" }, StageTitle, -1},
		{"header bars", func(op string) bool { return strings.HasPrefix(op, "rect ") }, StageHeaderBars, -1},
		{"month names", func(op string) bool { return strings.HasSuffix(op, " June") }, StageMonthNames, -1},
		{"footer", func(op string) bool { return op == "font body 9" }, StageFooter, -1},
	}
	for _, tc := range cases {
		r := &recorder{failOn: tc.failOn}
		err := Compose(r, 2024)
		var rerr *RenderError
		if !errors.As(err, &rerr) {
			t.Fatalf("%s: expected RenderError, got %v", tc.name, err)
		}
		if rerr.Stage != tc.stage || rerr.Month != tc.month {
			t.Fatalf("%s: got stage %s month %d", tc.name, rerr.Stage, rerr.Month)
		}
		if !errors.Is(err, errInjected) {
			t.Fatalf("%s: expected wrapped canvas error", tc.name)
		}
	}
}

func TestComposeStopsAtFailedMonth(t *testing.T) {
	grids := 0
	r := &recorder{failOn: func(op string) bool {
		if op == "font grid 12" {
			grids++
		}
		return grids == 4 && op == "font body 12"
	}}
	err := Compose(r, 2024)
	var rerr *RenderError
	if !errors.As(err, &rerr) {
		t.Fatalf("expected RenderError, got %v", err)
	}
	if rerr.Stage != StageMonth || rerr.Month != 3 {
		t.Fatalf("got stage %s month %d", rerr.Stage, rerr.Month)
	}
	if rerr.Code() != 0x1050 || rerr.Detail() != 3 {
		t.Fatalf("unexpected code %04X detail %d", rerr.Code(), rerr.Detail())
	}
	if got := err.Error(); got != "month April: injected failure" {
		t.Fatalf("unexpected message %q", got)
	}
	if grids != 4 {
		t.Fatalf("expected composition to stop after April, saw %d grids", grids)
	}
}

func BenchmarkCompose(b *testing.B) {
	b.ReportAllocs()
	r := &recorder{}
	for i := 0; i < b.N; i++ {
		r.ops = r.ops[:0]
		if err := Compose(r, MinYear+i%(MaxYear-MinYear+1)); err != nil {
			b.Fatalf("compose: %v", err)
		}
	}
}
