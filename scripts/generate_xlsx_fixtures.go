package main

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

// Regenerates the XLSX fixtures under testdata/ from the canonical row data.
// Run from the repository root: go run scripts/generate_xlsx_fixtures.go
func main() {
	generateSalesFixture()
	generatePaymentInvoicesFixture()
	fmt.Println("\n✅ All XLSX fixtures generated successfully!")
}

func writeSheet(f *excelize.File, headers []string, data [][]interface{}) {
	sheet := "Sheet1"

	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}
	for rowIdx, row := range data {
		for colIdx, val := range row {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			f.SetCellValue(sheet, cell, val)
		}
	}
}

func generateSalesFixture() {
	f := excelize.NewFile()

	headers := []string{"Invoice ID", "New Invoice ID", "Invoice Date", "Month", "Total Sales Amount", "Total Quantity", "Partner"}
	data := [][]interface{}{
		{"INV-001", "NINV-001", "2024-04-02", "Apr-24", 12500.00, 25, "Acme Traders"},
		{"INV-002", "", "2024-04-15", "Apr-24", 8000.00, 16, "Bharat Retail"},
		{"INV-003", "NINV-003", "2024-05-01", "May-24", 150000.00, 300, "Acme Traders"},
		{"INV-004", "", "2024-05-20", "May-24", 640.50, 1, "North Traders"},
		{"INV-005", "NINV-005", "2024-06-03", "Jun-24", 999.99, 2, "South Mart"},
	}
	writeSheet(f, headers, data)

	path := filepath.Join("testdata", "sales_sample.xlsx")
	if err := f.SaveAs(path); err != nil {
		log.Fatal(err)
	}
	fmt.Println("✓ Generated", path)
}

func generatePaymentInvoicesFixture() {
	f := excelize.NewFile()

	headers := []string{"Payment Number", "Invoice Number", "Month", "Invoice Date", "Transaction Description", "Amount Paid"}
	data := [][]interface{}{
		{"PMT-100", "INV-001", "Apr-24", "2024-04-02", "Invoice payment", 12500.00},
		{"PMT-101", "INV-002", "Apr-24", "2024-04-15", "Invoice payment", 4000.00},
		{"PMT-102", "INV-002", "May-24", "2024-04-15", "Invoice payment", 4000.00},
		{"PMT-103", "RET-001", "May-24", "2024-05-10", "Product returns", ""},
	}
	writeSheet(f, headers, data)

	path := filepath.Join("testdata", "payment_invoices_sample.xlsx")
	if err := f.SaveAs(path); err != nil {
		log.Fatal(err)
	}
	fmt.Println("✓ Generated", path)
}
