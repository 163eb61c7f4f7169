// Package calpdf lays out a one-page, twelve-month calendar of a year.
//
// The package holds the calendar arithmetic, the page geometry and the
// composer that draws the page onto a Canvas. Backends live in the pdf and
// raster packages; RenderText prints the same year as text on a terminal.
//
// Years from MinYear to MaxYear are supported. The page is A4 portrait in
// points: the year title on top, a 3 x 4 grid of months below and two footer
// captions at the bottom right.
//
// Example:
//
//	year, err := calpdf.ParseYear(os.Args[1])
//	if err != nil {
//		log.Fatal(err)
//	}
//	err = pdf.Render(pdf.RenderRequest{
//		Writer: outFile,
//		Year:   year,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Compose can drive any Canvas implementation. Canvases keep the first
// error; Compose checks it after every step and reports the failed step as
// a *RenderError.
package calpdf
