package receipt

import (
	"bytes"
	"fmt"
	"time"

	"franguinho-pos/internal/pkg/errs"
	"franguinho-pos/internal/usecase/readmodel"

	"github.com/jung-kurt/gofpdf"
)

// Generator renders order receipts as PDF.
type Generator struct {
	location *time.Location
}

func NewGenerator(location *time.Location) *Generator {
	return &Generator{location: location}
}

// Render produces a receipt PDF for a completed order.
func (g *Generator) Render(storeName string, o *readmodel.OrderRM) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.SetAutoPageBreak(true, 12)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 8, storeName, "", 1, "L", false, 0, "")

	pdf.SetFont("Arial", "B", 13)
	pdf.CellFormat(0, 7, fmt.Sprintf("Receipt %s", shortID(o.ID.String())), "", 1, "L", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Customer: %s", o.CustomerName), "", 1, "L", false, 0, "")
	if o.CustomerPhone != nil {
		pdf.CellFormat(0, 6, fmt.Sprintf("Phone: %s", *o.CustomerPhone), "", 1, "L", false, 0, "")
	}
	pdf.CellFormat(0, 6, fmt.Sprintf("Date: %s", o.CreatedAt.In(g.location).Format("02/01/2006 15:04")), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(0, 7, "Items", "1", 1, "L", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	for _, line := range o.Lines {
		unit := line.UnitPriceCents + line.VariationCents
		lineTotal := unit * int64(line.Quantity)
		label := fmt.Sprintf("%dx %s @ %s = %s", line.Quantity, line.ProductName, formatBRL(unit), formatBRL(lineTotal))
		if line.RedeemedWithPoints {
			label += " (points)"
		}
		pdf.MultiCell(0, 5, label, "", "L", false)
	}
	pdf.Ln(2)

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(95, 7, fmt.Sprintf("Subtotal: %s", formatBRL(o.SubtotalCents)), "1", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Discount: %s", formatBRL(o.DiscountCents)), "1", 1, "L", false, 0, "")
	totalLine := fmt.Sprintf("Total: %s", formatBRL(o.TotalCents))
	if o.CouponCode != nil {
		totalLine += fmt.Sprintf(" (coupon %s)", *o.CouponCode)
	}
	if o.FreeShipping {
		totalLine += " - free delivery"
	}
	pdf.CellFormat(190, 7, totalLine, "1", 1, "L", false, 0, "")

	var buffer bytes.Buffer
	if err := pdf.Output(&buffer); err != nil {
		return nil, "", errs.Wrap(err, "failed to render receipt PDF")
	}

	filename := fmt.Sprintf("receipt-%s.pdf", shortID(o.ID.String()))
	return buffer.Bytes(), filename, nil
}

func formatBRL(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%sR$ %d.%02d", sign, cents/100, cents%100)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
