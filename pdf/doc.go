// Package pdf renders the one-page year calendar to PDF using fpdf.
//
// The page is A4 portrait in points. Only the PDF core fonts Times-Bold and
// Courier are used, so no font files are needed or embedded.
//
// Example:
//
//	cfg := pdf.DefaultConfig()
//	cfg.CreationDate = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
//
//	err := pdf.Render(pdf.RenderRequest{
//		Writer: outFile,
//		Year:   2024,
//		Config: cfg,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Render validates the year before creating the document and writes nothing
// when composition fails. Composition failures unwrap to *calpdf.RenderError.
package pdf
