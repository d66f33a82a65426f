package invoice

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/polkiloo/gophershop/internal/domain/model"
)

// Document carries everything needed to render an order invoice.
type Document struct {
	Number       int64
	CustomerName string
	Address      string
	Country      string
	Items        []model.OrderItem
	Subtotal     float64
	Paid         float64
	IssuedAt     time.Time
}

// Renderer turns an invoice document into a file.
type Renderer interface {
	Render(doc Document) ([]byte, error)
}

// PDFRenderer renders invoices as A4 PDF documents.
type PDFRenderer struct{}

// NewPDFRenderer constructs PDFRenderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// Render produces the invoice PDF.
func (r *PDFRenderer) Render(doc Document) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Invoice #%d", doc.Number), false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, fmt.Sprintf("Invoice #%d", doc.Number))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, "Billed to: "+doc.CustomerName)
	pdf.Ln(6)
	pdf.Cell(0, 6, "Shipping address: "+doc.Address)
	pdf.Ln(6)
	if doc.Country != "" {
		pdf.Cell(0, 6, "Country: "+doc.Country)
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, "Issued: "+doc.IssuedAt.Format("2006-01-02"))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(90, 8, "Item", "1", 0, "L", false, 0, "")
	pdf.CellFormat(25, 8, "Qty", "1", 0, "R", false, 0, "")
	pdf.CellFormat(35, 8, "Unit price", "1", 0, "R", false, 0, "")
	pdf.CellFormat(35, 8, "Total", "1", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	for _, item := range doc.Items {
		pdf.CellFormat(90, 8, item.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 8, fmt.Sprintf("%d", item.Quantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 8, fmt.Sprintf("%.2f", item.ItemPrice), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 8, fmt.Sprintf("%.2f", item.TotalPrice), "1", 1, "R", false, 0, "")
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(150, 8, "Subtotal", "", 0, "R", false, 0, "")
	pdf.CellFormat(35, 8, fmt.Sprintf("%.2f", doc.Subtotal), "", 1, "R", false, 0, "")
	pdf.CellFormat(150, 8, "Paid", "", 0, "R", false, 0, "")
	pdf.CellFormat(35, 8, fmt.Sprintf("%.2f", doc.Paid), "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render invoice: %w", err)
	}
	return buf.Bytes(), nil
}
