package service

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
)

// Layout constants for the rendered contract document
const (
	pageMargin     = 20.0
	bodyLineHeight = 7.0
	titleFontSize  = 24.0
	typeFontSize   = 18.0
	bodyFontSize   = 12.0
	footerFontSize = 10.0
	brandMark      = "ContractGPT"
)

// Renderer lays out contract text into a paginated document
type Renderer interface {
	Render(contractType, content string) ([]byte, int, error)
}

// PDFRenderer produces the downloadable contract PDF: brand header, centered
// contract-type heading, word-wrapped body, page numbers, and a diagonal
// watermark on every page. Layout is deterministic: the same input always
// yields the same page count and bytes.
type PDFRenderer struct{}

func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// Render lays out the contract and returns the PDF bytes and page count
func (r *PDFRenderer) Render(contractType, content string) ([]byte, int, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	// Fixed creation date keeps output byte-identical across runs
	pdf.SetCreationDate(time.Unix(0, 0).UTC())
	pdf.SetAutoPageBreak(false, 0)
	pdf.AliasNbPages("")

	pageWidth, pageHeight := pdf.GetPageSize()

	// Watermark, drawn under the content of every page
	pdf.SetHeaderFunc(func() {
		pdf.SetFont("Helvetica", "", 60)
		pdf.SetTextColor(150, 150, 150)
		pdf.SetAlpha(0.15, "Normal")
		pdf.TransformBegin()
		pdf.TransformRotate(45, pageWidth/2, pageHeight/2)
		markWidth := pdf.GetStringWidth(brandMark)
		pdf.Text(pageWidth/2-markWidth/2, pageHeight/2, brandMark)
		pdf.TransformEnd()
		pdf.SetAlpha(1.0, "Normal")
	})

	// Per-page numbering footer
	pdf.SetFooterFunc(func() {
		pdf.SetFont("Helvetica", "", footerFontSize)
		pdf.SetTextColor(0, 0, 0)
		pdf.SetXY(pageWidth-pageMargin-40, pageHeight-14)
		pdf.CellFormat(40, 8, fmt.Sprintf("Page %d of {nb}", pdf.PageNo()), "", 0, "R", false, 0, "")
	})

	pdf.AddPage()
	y := pageMargin

	// Brand header
	pdf.SetFont("Helvetica", "B", titleFontSize)
	pdf.SetTextColor(0, 0, 255)
	pdf.Text(pageMargin, y+10, brandMark)
	y += 20

	// Contract type heading, centered
	heading := strings.ToUpper(contractType)
	pdf.SetFont("Helvetica", "B", typeFontSize)
	pdf.SetTextColor(0, 0, 0)
	headingWidth := pdf.GetStringWidth(heading)
	pdf.Text(pageWidth/2-headingWidth/2, y, heading)
	y += 15

	// Body, word-wrapped to the content width; a line that would pass the
	// bottom margin starts a new page
	pdf.SetFont("Helvetica", "", bodyFontSize)
	contentWidth := pageWidth - 2*pageMargin
	lines := pdf.SplitText(content, contentWidth)
	for _, line := range lines {
		if y > pageHeight-pageMargin {
			pdf.AddPage()
			y = pageMargin
		}
		pdf.Text(pageMargin, y, line)
		y += bodyLineHeight
	}

	pageCount := pdf.PageCount()

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, 0, fmt.Errorf("failed to render PDF: %w", err)
	}

	return buf.Bytes(), pageCount, nil
}
