package calpdf

import "fmt"

// Stage identifies a step of rendering a calendar document.
type Stage uint8

const (
	StageSetup Stage = iota + 1
	StageTitle
	StageHeaderBars
	StageMonthNames
	StageMonth
	StageFooter
	StageOutput
)

var stageNames = map[Stage]string{
	StageSetup:      "setup",
	StageTitle:      "title",
	StageHeaderBars: "header bars",
	StageMonthNames: "month names",
	StageMonth:      "month",
	StageFooter:     "footer",
	StageOutput:     "output",
}

func (s Stage) String() string {
	if name, ok := stageNames[s]; ok {
		return name
	}
	return fmt.Sprintf("stage(%d)", uint8(s))
}

// RenderError reports a failure of the drawing backend while rendering a
// calendar. The partially built document must be discarded.
type RenderError struct {
	Stage Stage
	// Month is the month index for StageMonth and -1 otherwise.
	Month int
	Err   error
}

// NewRenderError wraps err for stage, returning nil when err is nil.
func NewRenderError(stage Stage, err error) error {
	if err == nil {
		return nil
	}
	return &RenderError{Stage: stage, Month: -1, Err: err}
}

func (e *RenderError) Error() string {
	if e.Stage == StageMonth && e.Month >= 0 && e.Month < len(MonthNames) {
		return fmt.Sprintf("%s %s: %v", e.Stage, MonthNames[e.Month], e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// Code returns the numeric error code of the failed stage.
func (e *RenderError) Code() uint16 {
	return 0x1000 | uint16(e.Stage)<<4
}

// Detail returns the numeric detail of the failure: the month index for
// StageMonth, -1 otherwise.
func (e *RenderError) Detail() int {
	return e.Month
}
