// Package export writes the current draft as an XLSX workbook for
// hand-off to an accountant or bookkeeping tool.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"tdsbill/internal/domain"
	"tdsbill/internal/format"
)

const sheetName = "Invoice"

// Workbook builds an XLSX workbook from the draft snapshot. The caller
// writes it to the response and closes it.
func Workbook(rec domain.InvoiceRecord, totals domain.Totals, sectionLabel string) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	row := 1
	set := func(col string, value interface{}) {
		_ = f.SetCellValue(sheetName, col+fmt.Sprint(row), value)
	}
	pair := func(label string, value interface{}) {
		set("A", label)
		set("B", value)
		row++
	}

	pair("Invoice Number", rec.InvoiceNumber)
	pair("Invoice Date", format.DisplayDate(rec.InvoiceDate))
	pair("Place of Issue", rec.PlaceOfIssue)
	pair("Payment Reference", rec.PaymentReference)
	row++

	pair("Provider Name", rec.ProviderName)
	pair("Provider Address", rec.ProviderAddress)
	pair("Provider PAN", rec.ProviderPAN)
	pair("Provider Aadhaar", rec.ProviderAadhaar)
	pair("Nature of Service", rec.NatureOfService)
	row++

	pair("Client Name", rec.ClientName)
	pair("Client Address", rec.ClientAddress)
	pair("Client PAN", rec.ClientPAN)
	pair("Client GSTIN", rec.ClientGSTIN)
	pair("Authorized Signatory", rec.AuthorizedSignatory)
	row++

	// Item table
	headers := []string{"Sl.", "Description", "Basis", "Rate", "Qty", "Amount"}
	for i, h := range headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		set(col, h)
	}
	row++
	for idx := range rec.Items {
		item := &rec.Items[idx]
		set("A", idx+1)
		set("B", item.Description)
		set("C", string(item.Basis))
		set("D", item.Rate)
		if item.Basis == domain.BasisLumpSum {
			set("E", "")
		} else {
			set("E", item.Qty)
		}
		set("F", item.Amount)
		row++
	}
	row++

	pair("Gross Subtotal", totals.Subtotal)
	pair("TDS Section", sectionLabel)
	pair("TDS Rate (%)", totals.TDSRate)
	pair("TDS Amount", totals.TDSAmount)
	pair("Total Invoice Value", totals.Subtotal)
	pair("Net Payable after TDS", totals.NetPayable)

	return f, nil
}
