// Package document renders user-facing documents. It currently produces the
// resume PDF offered by GET /resume.
package document

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-career-guide/models"
	"github.com/go-pdf/fpdf"
)

//go:generate mockgen -source=resume.go -destination=../mock/document_mock.go -package=mock

// Page geometry in points.
const (
	pageWidth    = 600
	pageHeight   = 800
	marginLeft   = 50
	marginTop    = 60
	marginBottom = 50
)

// ResumeDocument is everything that ends up on the resume PDF.
type ResumeDocument struct {
	Name   string
	Email  string
	Resume models.EnhancedResume
}

// ResumeRenderer turns a resume into a PDF file.
type ResumeRenderer interface {
	Render(doc ResumeDocument) ([]byte, error)
}

// PDFRenderer implements [ResumeRenderer] with fpdf core fonts.
type PDFRenderer struct{}

// NewPDFRenderer returns a ready-to-use PDF renderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// Render lays the resume out on 600x800pt pages in this order: name, email,
// Professional Summary, Education, Experience, Skills and, when present,
// Career Highlights. Long sections flow onto new pages.
func (r *PDFRenderer) Render(doc ResumeDocument) ([]byte, error) {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		UnitStr: "pt",
		Size:    fpdf.SizeType{Wd: pageWidth, Ht: pageHeight},
	})
	pdf.SetMargins(marginLeft, marginTop, marginLeft)
	pdf.SetAutoPageBreak(true, marginBottom)
	pdf.AliasNbPages("")
	pdf.SetTitle(doc.Name+" Resume", true)
	pdf.SetTextColor(26, 26, 26)

	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFooterFunc(func() {
		pdf.SetY(-30)
		pdf.SetFont("Helvetica", "", 9)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d/{nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()

	pdf.SetFont("Helvetica", "", 20)
	pdf.MultiCell(0, 25, tr(doc.Name), "", "L", false)
	pdf.SetFont("Helvetica", "", 12)
	pdf.MultiCell(0, 20, tr(doc.Email), "", "L", false)

	section := func(title, body string, gap float64) {
		pdf.SetFont("Helvetica", "B", 14)
		pdf.MultiCell(0, 20, tr(title), "", "L", false)
		pdf.SetFont("Helvetica", "", 12)
		pdf.MultiCell(0, 16, tr(body), "", "L", false)
		pdf.Ln(gap)
	}

	resume := doc.Resume
	section("Professional Summary:", resume.Summary, 24)
	section("Education:", resume.Education, 24)
	section("Experience:", resume.Experience, 24)
	section("Skills:", strings.Join(resume.Skills, ", "), 14)
	if resume.Highlights != "" {
		section("Career Highlights:", resume.Highlights, 14)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("error rendering resume pdf: %w", err)
	}

	return buf.Bytes(), nil
}

// ResumeFileName is the attachment name offered for a user's resume.
func ResumeFileName(name string) string {
	return name + "_Resume.pdf"
}
