package exporter

import (
	"bytes"
	"fmt"

	"nfe-tracker/internal/features/tracking/domain"

	"github.com/jung-kurt/gofpdf"
)

// Page geometry in millimeters. The page height is computed from the record
// so the export is a single page sized to content, never paginated.
const (
	pageWidth  = 210.0
	marginX    = 12.0
	headerH    = 46.0
	eventRowH  = 7.0
	hintsRowH  = 6.0
	footerPad  = 14.0
	minPageH   = 90.0
	labelWidth = 42.0
)

// RenderPDF renders a tracking record as a single-page PDF document.
func RenderPDF(record *domain.TrackingRecord) ([]byte, error) {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           gofpdf.SizeType{Wd: pageWidth, Ht: pageHeight(record)},
	})
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(marginX, 10, marginX)
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 15)
	pdf.CellFormat(0, 9, "Shipment Tracking", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(100, 100, 100)
	pdf.CellFormat(0, 5, string(record.ID), "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(3)

	headerField(pdf, tr, "Carrier", record.Carrier)
	headerField(pdf, tr, "Current status", record.CurrentStatus)
	headerField(pdf, tr, "Estimated delivery", record.EstimatedDelivery)
	headerField(pdf, tr, "Origin", record.Origin)
	headerField(pdf, tr, "Destination", record.Destination)
	if record.ProductName != "" {
		headerField(pdf, tr, "Product", record.ProductName)
	}
	if record.Weight != "" {
		headerField(pdf, tr, "Weight", record.Weight)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 7, "Events", "B", 1, "L", false, 0, "")

	if len(record.Events) == 0 {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.CellFormat(0, eventRowH, tr(domain.StatusNoEvents), "", 1, "L", false, 0, "")
	}
	for _, e := range record.Events {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(38, eventRowH, e.Timestamp.Format("02/01/2006 15:04"), "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		pdf.CellFormat(0, eventRowH, tr(e.Status+" - "+e.Location), "", 1, "L", false, 0, "")
	}

	if record.Hints != nil {
		renderHints(pdf, tr, record.Hints)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func headerField(pdf *gofpdf.Fpdf, tr func(string) string, label, value string) {
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(labelWidth, 6, label, "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 6, tr(value), "", 1, "L", false, 0, "")
}

func renderHints(pdf *gofpdf.Fpdf, tr func(string) string, hints *domain.ShipmentHints) {
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 7, "Fiscal Document Data", "B", 1, "L", false, 0, "")

	if v := hints.Volume; v != nil {
		headerField(pdf, tr, "Volumes", fmt.Sprintf("%s x %s", v.Quantity, v.Species))
		headerField(pdf, tr, "Net / gross weight", fmt.Sprintf("%s / %s", v.NetWeight, v.GrossWeight))
	}
	if f := hints.Invoice; f != nil {
		headerField(pdf, tr, "Invoice", f.Number)
		headerField(pdf, tr, "Net value", f.NetValue)
	}
	for _, inst := range hints.Installments {
		headerField(pdf, tr, "Installment "+inst.Number, fmt.Sprintf("%s due %s", inst.Value, inst.DueDate))
	}
}

// pageHeight sizes the page to the record's content.
func pageHeight(record *domain.TrackingRecord) float64 {
	h := headerH + footerPad + eventRowH*float64(len(record.Events)+1)
	if record.Hints != nil {
		rows := len(record.Hints.Installments) + 6
		h += hintsRowH * float64(rows)
	}
	if h < minPageH {
		return minPageH
	}
	return h
}
