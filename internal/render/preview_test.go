package render_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tdsbill/internal/domain"
	"tdsbill/internal/render"
	"tdsbill/internal/tds"
)

func sampleRecord() (domain.InvoiceRecord, domain.Totals) {
	rec := domain.InvoiceRecord{
		ProviderName:        "Asha Rao",
		ProviderAddress:     "12 MG Road, Bangalore",
		ProviderPAN:         "ABCXE1234F",
		NatureOfService:     "Technical Consulting",
		ClientName:          "Acme Pvt Ltd",
		ClientAddress:       "1 Tower Lane, Mumbai",
		ClientGSTIN:         "27AAACA1234A1Z5",
		AuthorizedSignatory: "R. Mehta",
		InvoiceNumber:       "INV-007",
		InvoiceDate:         "2025-03-14",
		PlaceOfIssue:        "Bangalore",
		TDSSectionID:        "194J_TECH",
		Items: []domain.LineItem{
			{ID: uuid.New(), Description: "Platform work", Basis: domain.BasisPerDay, Rate: 1000, Qty: 5, Amount: 5000},
			{ID: uuid.New(), Description: "Setup fee", Basis: domain.BasisLumpSum, Rate: 2000, Qty: 7, Amount: 2000},
		},
	}
	totals := domain.Totals{Subtotal: 7000, TDSRate: 2, TDSAmount: 140, NetPayable: 6860}
	return rec, totals
}

func TestHTML_RendersDocument(t *testing.T) {
	r := render.NewRenderer(tds.NewCatalog(tds.DefaultSections()))
	rec, totals := sampleRecord()

	out, err := r.HTML(rec, totals)
	require.NoError(t, err)
	html := string(out)

	assert.Contains(t, html, "Consultancy Invoice")
	assert.Contains(t, html, "INV-007")
	assert.Contains(t, html, "14/03/2025")
	assert.Contains(t, html, "Acme Pvt Ltd")
	assert.Contains(t, html, "GSTIN: 27AAACA1234A1Z5")
	assert.Contains(t, html, "Asha Rao")
	assert.Contains(t, html, "PAN: ABCXE1234F")

	// Item rows: formatted amounts, qty with basis suffix, blank lump-sum qty
	assert.Contains(t, html, "₹1,000.00")
	assert.Contains(t, html, "5 Days")
	assert.Contains(t, html, "₹2,000.00")
	assert.Contains(t, html, `<td class="ctr"></td>`, "lump-sum qty cell renders empty")
	assert.NotContains(t, html, "7 Days")

	// TDS note and totals: total invoice value stays gross
	assert.Contains(t, html, "Section 194J - Technical Services")
	assert.Contains(t, html, "@ 2% = ₹140.00")
	assert.Contains(t, html, "Net Amount Payable after TDS: ₹6,860.00")
	assert.Contains(t, html, "₹7,000.00")
}

func TestHTML_EmptyDraftPlaceholders(t *testing.T) {
	r := render.NewRenderer(tds.NewCatalog(tds.DefaultSections()))
	rec := domain.InvoiceRecord{
		InvoiceDate:  "2025-03-14",
		TDSSectionID: "194J_PROF",
		Items:        []domain.LineItem{{ID: uuid.New(), Basis: domain.BasisPerDay, Qty: 1}},
	}

	out, err := r.HTML(rec, domain.Totals{TDSRate: 10})
	require.NoError(t, err)
	html := string(out)

	assert.Contains(t, html, "CLIENT NAME")
	assert.Contains(t, html, "YOUR NAME / FIRM")
	assert.Contains(t, html, "Description of service")
	assert.Contains(t, html, "₹0.00")
	assert.NotContains(t, html, "Invoice No:", "optional invoice number is omitted when empty")
}

func TestHTML_EscapesUserInput(t *testing.T) {
	r := render.NewRenderer(tds.NewCatalog(tds.DefaultSections()))
	rec, totals := sampleRecord()
	rec.Items[0].Description = "<script>alert(1)</script>"

	out, err := r.HTML(rec, totals)
	require.NoError(t, err)

	assert.NotContains(t, string(out), "<script>alert(1)</script>")
}

func TestHTML_LogoEmbedded(t *testing.T) {
	r := render.NewRenderer(tds.NewCatalog(tds.DefaultSections()))
	rec, totals := sampleRecord()
	rec.LogoDataURI = "data:image/png;base64,aGVsbG8="

	out, err := r.HTML(rec, totals)
	require.NoError(t, err)
	assert.Contains(t, string(out), `src="data:image/png;base64,aGVsbG8="`)
}
