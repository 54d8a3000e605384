package domain

import "github.com/google/uuid"

// LineItem is one billable row of the invoice. Amount is a cached derived
// field and must be recomputed whenever Rate, Qty, or Basis changes;
// for a lump-sum item the effective quantity is 1 regardless of Qty.
type LineItem struct {
	ID          uuid.UUID     `json:"id"`
	Description string        `json:"description"`
	Basis       ChargingBasis `json:"basis"`
	Rate        float64       `json:"rate"`
	Qty         float64       `json:"qty"`
	Amount      float64       `json:"amount"`
}

// EffectiveQty returns the quantity used for the amount calculation.
func (i *LineItem) EffectiveQty() float64 {
	if i.Basis == BasisLumpSum {
		return 1
	}
	return i.Qty
}

// Recompute refreshes the cached Amount from the current rate and quantity.
func (i *LineItem) Recompute() {
	i.Amount = i.Rate * i.EffectiveQty()
}

// TDSSection is one entry of the static TDS section catalog. A section
// with RateIndivHUF > 0 charges that rate when the payee PAN denotes an
// individual or HUF and RateDefault otherwise (the 194C contractor
// split); all other sections charge RateDefault unconditionally.
type TDSSection struct {
	ID           string  `json:"id"`
	Code         string  `json:"code"`
	Label        string  `json:"label"`
	RateDefault  float64 `json:"rate_default"`
	RateIndivHUF float64 `json:"rate_indiv_huf,omitempty"`
}

// InvoiceRecord is the single in-memory invoice draft for the session.
// It is mutated in place by field-level and item-level operations and is
// never persisted.
type InvoiceRecord struct {
	// Service provider (the party raising the invoice)
	ProviderName    string `json:"provider_name"`
	ProviderAddress string `json:"provider_address"`
	ProviderPAN     string `json:"provider_pan"`
	ProviderAadhaar string `json:"provider_aadhaar"`
	ProviderContact string `json:"provider_contact"`
	ProviderEmail   string `json:"provider_email"`
	NatureOfService string `json:"nature_of_service"`

	// Client (the recipient / payer)
	ClientName          string `json:"client_name"`
	ClientAddress       string `json:"client_address"`
	ClientPAN           string `json:"client_pan"`
	ClientGSTIN         string `json:"client_gstin"`
	AuthorizedSignatory string `json:"authorized_signatory"`
	LogoDataURI         string `json:"logo_data_uri,omitempty"`

	// Invoice meta
	InvoiceNumber    string `json:"invoice_number"`
	InvoiceDate      string `json:"invoice_date"` // ISO calendar date (2006-01-02)
	PlaceOfIssue     string `json:"place_of_issue"`
	PaymentReference string `json:"payment_reference"`

	// Ordered line items; never empty.
	Items []LineItem `json:"items"`

	TDSSectionID string `json:"tds_section_id"`
}

// Totals holds the derived aggregate values of a draft. They are
// recomputed from the record on every snapshot and never stored.
type Totals struct {
	// Subtotal is the gross sum of item amounts. The invoice's displayed
	// "Total Invoice Value" equals Subtotal: TDS is a statutory deduction
	// made by the payer, not a reduction of the invoiced value.
	Subtotal   float64 `json:"subtotal"`
	TDSRate    float64 `json:"tds_rate"`
	TDSAmount  float64 `json:"tds_amount"`
	NetPayable float64 `json:"net_payable"`
}
