package pdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"staffhub/internal/models"
)

// StatementGenerator renders the commission ledger as an A4 PDF, in memory.
type StatementGenerator struct {
	CompanyName string
}

func NewStatementGenerator(companyName string) *StatementGenerator {
	return &StatementGenerator{CompanyName: companyName}
}

func (g *StatementGenerator) Generate(rows []models.StatementRow) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Commission statement", false)
	pdf.SetAuthor(g.CompanyName, false)
	pdf.SetMargins(15, 15, 15)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "Commission statement", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("%s, generated %s", g.CompanyName, time.Now().Format("02 Jan 2006")), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// table header
	widths := []float64{38, 42, 26, 26, 30, 18}
	headers := []string{"Rep", "Client", "Meeting", "Sale", "Commission", "Paid"}
	pdf.SetFont("Helvetica", "B", 10)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	var saleTotal, commissionTotal float64
	for _, row := range rows {
		paid := "no"
		if row.IsPaid {
			paid = "yes"
		}
		pdf.CellFormat(widths[0], 7, row.RepName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 7, row.ClientName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], 7, row.MeetingDate, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[3], 7, fmt.Sprintf("%.2f", row.SaleAmount), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[4], 7, fmt.Sprintf("%.2f", row.CommissionAmount), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[5], 7, paid, "1", 1, "C", false, 0, "")
		saleTotal += row.SaleAmount
		commissionTotal += row.CommissionAmount
	}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(widths[0]+widths[1]+widths[2], 7, "Totals", "1", 0, "L", false, 0, "")
	pdf.CellFormat(widths[3], 7, fmt.Sprintf("%.2f", saleTotal), "1", 0, "R", false, 0, "")
	pdf.CellFormat(widths[4], 7, fmt.Sprintf("%.2f", commissionTotal), "1", 0, "R", false, 0, "")
	pdf.CellFormat(widths[5], 7, "", "1", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
