package report

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/klauseduard/hl7-tools/internal/diff"
)

const pdfValueLimit = 60

// SavePDF renders the comparison document into a PDF file. The report
// digest is stamped as a QR code on the first page so a printout can be
// traced back to the JSON document it was generated from.
func SavePDF(doc Document, out string, lang Language) error {
	tr := NewTranslator(lang)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(tr.T("title"), true)
	pdf.SetAuthor("hl7view", false)
	pdf.SetCreator("hl7view", false)
	pdf.SetMargins(15, 20, 15)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	enc := pdf.UnicodeTranslatorFromDescriptor("")

	addTitle(pdf, enc(tr.T("title")))
	addDigestQR(pdf, doc.Digest)
	addSummarySection(pdf, enc, tr, doc)
	addDifferencesSection(pdf, enc, tr, doc.Diff)

	if pdf.Err() {
		return pdf.Error()
	}
	return pdf.OutputFileAndClose(out)
}

func addTitle(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, title)
	pdf.Ln(12)
}

// addDigestQR places the digest QR in the top-right corner.
func addDigestQR(pdf *gofpdf.Fpdf, digest string) {
	if digest == "" {
		return
	}
	png, err := DigestQR(digest, 256)
	if err != nil {
		return
	}
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("digest-qr", opts, bytes.NewReader(png))
	pageWidth, _ := pdf.GetPageSize()
	pdf.ImageOptions("digest-qr", pageWidth-40, 12, 25, 25, false, opts, 0, "")
}

func addSummarySection(pdf *gofpdf.Fpdf, enc func(string) string, tr Translator, doc Document) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, enc(tr.T("summary")))
	pdf.Ln(8)

	d := doc.Diff
	s := d.Summary
	verdict := tr.T("verdict_differs")
	if s.Modified+s.AOnly+s.BOnly == 0 {
		verdict = tr.T("verdict_identical")
	}

	pdf.SetFont("Helvetica", "", 11)
	items := []struct {
		label string
		value string
	}{
		{label: tr.T("generated"), value: doc.Generated.Format(time.RFC3339)},
		{label: tr.T("source_a"), value: emptyFallback(doc.SourceA, "-")},
		{label: tr.T("source_b"), value: emptyFallback(doc.SourceB, "-")},
		{label: tr.T("message_types"), value: emptyFallback(d.TypeA, "?") + " / " + emptyFallback(d.TypeB, "?")},
		{label: tr.T("versions"), value: emptyFallback(d.VersionA, "?") + " / " + emptyFallback(d.VersionB, "?")},
		{label: tr.T("total_fields"), value: strconv.Itoa(s.Total)},
		{label: tr.T("identical"), value: strconv.Itoa(s.Identical)},
		{label: tr.T("modified"), value: strconv.Itoa(s.Modified)},
		{label: tr.T("a_only"), value: strconv.Itoa(s.AOnly)},
		{label: tr.T("b_only"), value: strconv.Itoa(s.BOnly)},
		{label: "", value: verdict},
	}
	for _, item := range items {
		pdf.CellFormat(50, 6, enc(item.label), "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 6, enc(item.value), "", 1, "L", false, 0, "")
	}
	if doc.Digest != "" {
		pdf.SetFont("Helvetica", "", 8)
		pdf.CellFormat(0, 5, enc(tr.T("digest"))+": "+doc.Digest, "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)
}

func addDifferencesSection(pdf *gofpdf.Fpdf, enc func(string) string, tr Translator, d *diff.MessageDiff) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, enc(tr.T("differences")))
	pdf.Ln(9)

	changed := changedSegments(d)
	if len(changed) == 0 {
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, enc(tr.T("no_differences")), "", "L", false)
		return
	}

	headers := []string{tr.T("col_address"), tr.T("col_value_a"), tr.T("col_value_b"), tr.T("col_status")}
	widths := []float64{30, 62, 62, 26}

	for _, sd := range changed {
		label := sd.Name
		if sd.RepIndex > 1 {
			label = fmt.Sprintf("%s[%d]", sd.Name, sd.RepIndex)
		}
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(0, 6, enc(tr.T("segment"))+" "+label+segmentBadge(tr, sd.Status), "", 1, "L", false, 0, "")

		pdf.SetFillColor(240, 240, 240)
		pdf.SetFont("Helvetica", "B", 9)
		for i, h := range headers {
			pdf.CellFormat(widths[i], 6, enc(h), "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont("Helvetica", "", 8)
		for _, fd := range sd.Fields {
			if fd.Status == diff.StatusIdentical {
				continue
			}
			values := []string{
				fd.Address,
				sideValue(enc, tr, fd.ValueA, fd.Status == diff.StatusBOnly),
				sideValue(enc, tr, fd.ValueB, fd.Status == diff.StatusAOnly),
				string(fd.Status),
			}
			renderTableRow(pdf, widths, values, 4.5)
		}
		pdf.Ln(3)
	}
}

func changedSegments(d *diff.MessageDiff) []diff.SegmentDiff {
	var changed []diff.SegmentDiff
	for _, sd := range d.Segments {
		if sd.Status != diff.StatusIdentical {
			changed = append(changed, sd)
		}
	}
	return changed
}

func segmentBadge(tr Translator, status diff.Status) string {
	switch status {
	case diff.StatusAOnly:
		return " (" + tr.T("a_only") + ")"
	case diff.StatusBOnly:
		return " (" + tr.T("b_only") + ")"
	}
	return ""
}

func sideValue(enc func(string) string, tr Translator, val string, absent bool) string {
	if absent {
		return enc(tr.T("absent"))
	}
	if len(val) > pdfValueLimit {
		return val[:pdfValueLimit] + "..."
	}
	return val
}

func renderTableRow(pdf *gofpdf.Fpdf, widths []float64, values []string, lineHeight float64) {
	xStart := pdf.GetX()
	yStart := pdf.GetY()
	maxLines := 1
	splitCols := make([][]string, len(values))
	for i, val := range values {
		text := strings.TrimSpace(val)
		if text == "" {
			text = "-"
		}
		lines := pdf.SplitText(text, widths[i]-2)
		if len(lines) == 0 {
			lines = []string{""}
		}
		splitCols[i] = lines
		if len(lines) > maxLines {
			maxLines = len(lines)
		}
	}
	rowHeight := float64(maxLines) * lineHeight
	x := xStart
	for i, lines := range splitCols {
		pdf.SetXY(x, yStart)
		cellText := strings.Join(lines, "\n")
		pdf.MultiCell(widths[i], lineHeight, cellText, "1", "L", false)
		x += widths[i]
	}
	pdf.SetXY(xStart, yStart+rowHeight)
}

func emptyFallback(val, fallback string) string {
	if strings.TrimSpace(val) == "" {
		return fallback
	}
	return val
}
