package pdf

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"

	"github.com/arvelin/fieldflow/internal/model"
)

type Generator struct {
	fontName string
}

func NewGenerator() *Generator {
	return &Generator{fontName: "Helvetica"}
}

func (g *Generator) Generate(quote model.Quote) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pdf.SetFont(g.fontName, "B", 16)
	pdf.CellFormat(0, 10, "QUOTE", "", 1, "C", false, 0, "")

	pdf.SetFont(g.fontName, "", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("Quote %s, %s", quote.QuoteNumber, formatDate(quote.CreatedAt)), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Valid until %s", formatDate(quote.ValidUntil)), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	addCustomerBlock(pdf, g.fontName, quote)
	pdf.Ln(4)

	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 8, quote.Title, "", 1, "L", false, 0, "")
	if strings.TrimSpace(quote.Description) != "" {
		pdf.SetFont(g.fontName, "", 10)
		pdf.MultiCell(0, 5, quote.Description, "", "L", false)
	}
	pdf.Ln(2)

	headers := []string{"Description", "Qty", "Unit", "Unit price", "Discount", "Total"}
	colWidths := []float64{70, 18, 16, 26, 24, 26}
	drawTableRow(pdf, g.fontName, headers, colWidths, true)

	for _, item := range quote.Items {
		row := []string{
			item.Description,
			item.Quantity.String(),
			item.Unit,
			formatAmount(item.UnitPrice),
			formatPercent(item.DiscountPercent),
			formatAmount(item.TotalPrice),
		}
		drawTableRow(pdf, g.fontName, row, colWidths, false)
	}

	pdf.Ln(2)
	pdf.SetFont(g.fontName, "", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("Subtotal: %s", formatAmount(quote.Subtotal)), "", 1, "R", false, 0, "")
	if quote.DiscountPercent.IsPositive() {
		pdf.CellFormat(0, 6, fmt.Sprintf("Discount (%s): -%s", formatPercent(quote.DiscountPercent), formatAmount(quote.DiscountAmount)), "", 1, "R", false, 0, "")
	}
	pdf.CellFormat(0, 6, fmt.Sprintf("VAT (%s): %s", formatPercent(quote.VATPercent), formatAmount(quote.VATAmount)), "", 1, "R", false, 0, "")
	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 8, fmt.Sprintf("Total: %s", formatAmount(quote.TotalAmount)), "", 1, "R", false, 0, "")

	if strings.TrimSpace(quote.Notes) != "" {
		pdf.Ln(4)
		pdf.SetFont(g.fontName, "B", 11)
		pdf.CellFormat(0, 6, "Notes", "", 1, "L", false, 0, "")
		pdf.SetFont(g.fontName, "", 10)
		pdf.MultiCell(0, 5, quote.Notes, "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func addCustomerBlock(pdf *gofpdf.Fpdf, fontName string, quote model.Quote) {
	pdf.SetFont(fontName, "B", 11)
	pdf.CellFormat(0, 6, "Customer", "", 1, "L", false, 0, "")
	pdf.SetFont(fontName, "", 10)

	customer := quote.Customer
	lines := []string{
		customer.Name,
		fmt.Sprintf("%s, %s %s", customer.Address.Street, customer.Address.PostalCode, customer.Address.City),
		fmt.Sprintf("Email: %s", safeValue(customer.Email)),
		fmt.Sprintf("Phone: %s", safeValue(customer.Phone)),
	}
	if quote.Contact != nil {
		lines = append(lines, fmt.Sprintf("Attn: %s", quote.Contact.FullName()))
	}
	for _, line := range lines {
		pdf.MultiCell(0, 5, line, "", "L", false)
	}
}

func drawTableRow(pdf *gofpdf.Fpdf, fontName string, cols []string, widths []float64, header bool) {
	style := ""
	if header {
		style = "B"
	}
	pdf.SetFont(fontName, style, 10)
	for i, col := range cols {
		align := "L"
		if i > 0 {
			align = "R"
		}
		pdf.CellFormat(widths[i], 8, col, "1", 0, align, false, 0, "")
	}
	pdf.Ln(-1)
}

func safeValue(value string) string {
	if strings.TrimSpace(value) == "" {
		return "-"
	}
	return value
}

func formatAmount(value decimal.Decimal) string {
	return value.StringFixed(2)
}

func formatPercent(value decimal.Decimal) string {
	return value.StringFixed(0) + "%"
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02")
}
