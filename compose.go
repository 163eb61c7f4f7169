package calpdf

import "strconv"

// Compose draws the calendar page for year onto c. The drawing order is
// fixed: title, header bars, month names, the twelve month grids, footer.
// Later steps paint over earlier ones, so the order must not change.
//
// Compose stops at the first step after which c reports an error and
// returns it as a *RenderError. The caller must discard the document.
func Compose(c Canvas, year int, opts ...ComposeOption) error {
	cfg := composeConfig{footer: DefaultFooter}
	for _, opt := range opts {
		opt(&cfg)
	}
	log := Logger()
	log.Debug("compose", "year", year, "leap", IsLeap(year))

	drawTitle(c, year)
	if err := check(c, StageTitle); err != nil {
		return err
	}
	drawHeaderBars(c)
	if err := check(c, StageHeaderBars); err != nil {
		return err
	}
	drawMonthNames(c)
	if err := check(c, StageMonthNames); err != nil {
		return err
	}
	for _, month := range Months(year) {
		drawMonth(c, month)
		if err := c.Err(); err != nil {
			return &RenderError{Stage: StageMonth, Month: month.Index, Err: err}
		}
		log.Debug("month drawn", "month", month.Name, "days", month.Days, "first", month.FirstWeekday)
	}
	drawFooter(c, cfg.footer)
	return check(c, StageFooter)
}

func check(c Canvas, stage Stage) error {
	return NewRenderError(stage, c.Err())
}

func drawTitle(c Canvas, year int) {
	s := strconv.Itoa(year)
	c.SaveState()
	c.BeginText()
	c.SetFont(FontBody, TitleFontSize)
	at := TitleAt(c.TextWidth(s)).PDF()
	c.SetTextMatrix(Matrix{TitleScale, 0, 0, 1, at.X, at.Y})
	c.ShowText(s)
	c.EndText()
	c.RestoreState()
}

func drawHeaderBars(c Canvas) {
	c.SaveState()
	c.SetFillGray(HeaderShade)
	for m := range MonthNames {
		r := HeaderBar(m).PDF()
		c.FillRect(r.X, r.Y, r.W, r.H)
	}
	c.RestoreState()
}

func drawMonthNames(c Canvas) {
	c.BeginText()
	c.SetFont(FontBody, MonthNameFontSize)
	for m, name := range MonthNames {
		at := MonthNameAt(m, c.TextWidth(name)).PDF()
		c.TextOut(at.X, at.Y, name)
	}
	c.EndText()
}

func drawMonth(c Canvas, month Month) {
	c.BeginText()
	c.SetFont(FontGrid, GridFontSize)
	for _, l := range WeekdayLabels(month.Index) {
		at := l.At.PDF()
		c.TextOut(at.X, at.Y, l.Text)
	}
	c.SetFont(FontBody, GridFontSize)
	for _, l := range DayLabels(month) {
		at := l.At.PDF()
		c.TextOut(at.X, at.Y, l.Text)
	}
	c.EndText()
}

func drawFooter(c Canvas, lines [2]string) {
	c.SaveState()
	c.BeginText()
	c.SetFont(FontBody, FooterFontSize)
	for i, line := range lines {
		at := FooterAt(i, c.TextWidth(line)).PDF()
		c.TextOut(at.X, at.Y, line)
	}
	c.EndText()
	c.RestoreState()
}
