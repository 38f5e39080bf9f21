// Package contract renders the fixed-layout loan agreement that is
// mailed to the applicant on approval.
package contract

import (
	"fmt"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"

	"smartlend/internal/domain/loan"
)

const (
	issuerName  = "SmartLend"
	issuerEmail = "smartlend@outlook.fr"

	// A4 portrait, millimeters
	marginLeft  = 20
	marginRight = 20
	valueX      = 80
	lineHeight  = 8
	// below this y we page-break so a row never crosses the boundary
	bodyLimitY = 250.0
)

type Generator struct{ dir string }

// NewGenerator writes contracts into dir, which is shared with the
// uploaded-document store.
func NewGenerator(dir string) *Generator { return &Generator{dir: dir} }

// Filename is deterministic per loan, so regenerating a contract
// overwrites the previous file instead of accumulating copies.
func Filename(loanID uint64) string { return fmt.Sprintf("contract_%d.pdf", loanID) }

// Generate renders the agreement for l and returns the full path of the
// written file.
func (g *Generator) Generate(l *loan.LoanApplication) (string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)

	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetTextColor(128, 128, 128)
		pdf.CellFormat(0, 5, issuerName+" - "+issuerEmail+" - www.smartlend.com", "", 0, "C", false, 0, "")
	})

	pdf.AddPage()

	// header
	pdf.SetFont("Helvetica", "B", 20)
	pdf.SetTextColor(13, 110, 253)
	pdf.SetXY(marginLeft, 20)
	pdf.CellFormat(0, 10, issuerName+" - Loan Agreement", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetX(marginLeft)
	pdf.CellFormat(0, 5, "Email: "+issuerEmail, "", 1, "L", false, 0, "")
	pdf.SetX(marginLeft)
	pdf.CellFormat(0, 5, "Date: "+l.CreatedAt.Format("2006-01-02"), "", 1, "L", false, 0, "")

	rule(pdf, pdf.GetY()+4)
	pdf.SetY(pdf.GetY() + 8)

	rows := []struct{ label, value string }{
		{"Full name", l.FullName},
		{"Email", l.Email},
		{"Requested amount", fmt.Sprintf("%.2f EUR", l.Amount)},
		{"Origination fee", fmt.Sprintf("%.2f EUR", l.Fee)},
		{"Interest", fmt.Sprintf("%.2f EUR", l.Interest)},
		{"Total repayment", fmt.Sprintf("%.2f EUR", l.Total)},
		{"Duration", fmt.Sprintf("%d months", l.Duration)},
		{"Repayment period", string(l.Period)},
		{"Bank account (RIB)", l.RIB},
		{"Purpose", l.Objective},
	}

	for _, row := range rows {
		if pdf.GetY()+lineHeight > bodyLimitY {
			pdf.AddPage()
			pdf.SetY(20)
			rule(pdf, pdf.GetY())
			pdf.SetY(pdf.GetY() + 6)
		}
		y := pdf.GetY()
		pdf.SetFont("Helvetica", "B", 11)
		pdf.SetTextColor(13, 110, 253)
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(valueX-marginLeft, lineHeight, row.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.SetTextColor(0, 0, 0)
		pdf.SetXY(valueX, y)
		pdf.CellFormat(0, lineHeight, row.value, "", 1, "L", false, 0, "")
	}

	// signature blocks
	if pdf.GetY()+30 > bodyLimitY {
		pdf.AddPage()
		pdf.SetY(20)
	}
	y := pdf.GetY() + 15
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(80, lineHeight, "Applicant signature:", "", 0, "L", false, 0, "")
	pdf.SetXY(115, y)
	pdf.CellFormat(80, lineHeight, issuerName+" signature:", "", 1, "L", false, 0, "")
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.2)
	pdf.Line(marginLeft, y+14, 95, y+14)
	pdf.Line(115, y+14, 190, y+14)

	path := filepath.Join(g.dir, Filename(l.ID))
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("write contract: %w", err)
	}
	return path, nil
}

func rule(pdf *gofpdf.Fpdf, y float64) {
	pdf.SetDrawColor(13, 110, 253)
	pdf.SetLineWidth(0.4)
	pdf.Line(marginLeft-5, y, 210-marginRight+5, y)
}
