package document

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/polyforma/qualitrack/internal/domain/certificate"
	"github.com/polyforma/qualitrack/internal/shared/locale"
)

// PDFRenderer lays out a quality certificate on one A4 page.
type PDFRenderer struct {
	company string
	format  *locale.Formatter
}

func NewPDFRenderer(company string, format *locale.Formatter) *PDFRenderer {
	return &PDFRenderer{company: company, format: format}
}

func (r *PDFRenderer) RenderPDF(facts certificate.DocumentFacts) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Certificado de calidad "+facts.Code, true)
	pdf.SetAuthor(r.company, true)
	pdf.SetCreationDate(facts.IssuedAt)
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	// core fonts are cp1252
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	f := r.format

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, tr("Certificado de Calidad"), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, tr(r.company), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, tr("Folio: "+facts.Code), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, tr("Fecha de emisión: "+f.Date(facts.IssuedAt)), "", 1, "L", false, 0, "")
	pdf.Ln(3)

	section := func(title string) {
		pdf.Ln(2)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.SetFillColor(230, 236, 242)
		pdf.CellFormat(0, 7, tr(title), "", 1, "L", true, 0, "")
		pdf.SetFont("Helvetica", "", 10)
	}
	row := func(label, value string) {
		pdf.CellFormat(60, 6, tr(label), "B", 0, "L", false, 0, "")
		pdf.CellFormat(0, 6, tr(value), "B", 1, "L", false, 0, "")
	}

	section("Producto y lote")
	row("Producto", facts.ProductName)
	row("Lote", facts.LotNumber)
	row("Fecha de producción", f.Date(facts.ProductionDate))
	row("Turno", facts.Shift)
	if facts.ProductionLine != "" {
		row("Línea", facts.ProductionLine)
	}
	row("Piezas producidas", f.Int(facts.TotalProduced))
	row("Piezas aprobadas", f.Int(facts.TotalApproved))
	row("Piezas rechazadas", f.Int(facts.TotalRejected))

	section("Inspección")
	row("Control de calidad", fmt.Sprintf("#%d, %s", facts.QualityControlID, f.Date(facts.InspectedAt)))
	row("Peso", f.OptionalDecimal(facts.Weight, 3, "g"))
	row("Diámetro", f.OptionalDecimal(facts.Diameter, 3, "mm"))
	row("Altura", f.OptionalDecimal(facts.Height, 3, "mm"))
	row("Ancho", f.OptionalDecimal(facts.Width, 3, "mm"))
	for _, m := range facts.ExtraMeasurements {
		row(m.Name, m.Value)
	}
	row("Merma", f.Percent(facts.WastePercentage))
	row("Umbral de merma", f.Percent(facts.AlertThreshold))
	verdict := "Rechazado"
	if facts.Approved {
		verdict = "Aprobado"
	}
	row("Dictamen", verdict)

	if len(facts.Defects) > 0 {
		section("Defectos")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(50, 6, tr("Tipo"), "B", 0, "L", false, 0, "")
		pdf.CellFormat(25, 6, tr("Cantidad"), "B", 0, "R", false, 0, "")
		pdf.CellFormat(0, 6, tr("Descripción"), "B", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		for _, d := range facts.Defects {
			pdf.CellFormat(50, 6, tr(d.Label), "B", 0, "L", false, 0, "")
			pdf.CellFormat(25, 6, f.Int(d.Quantity), "B", 0, "R", false, 0, "")
			pdf.CellFormat(0, 6, tr(d.Description), "B", 1, "L", false, 0, "")
		}
	}

	if facts.Notes != "" {
		section("Observaciones")
		pdf.MultiCell(0, 5, tr(facts.Notes), "", "L", false)
	}

	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(85, 6, tr("Solicitó: "+facts.RequestedBy), "T", 0, "C", false, 0, "")
	pdf.CellFormat(0, 6, "", "", 0, "", false, 0, "")
	pdf.SetX(105)
	pdf.CellFormat(85, 6, tr("Aprobó: "+facts.ApprovedBy), "T", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render certificate %s: %w", facts.Code, err)
	}
	return buf.Bytes(), nil
}
