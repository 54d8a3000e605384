// Package render projects the current invoice record into the printable
// document: an HTML preview and its PDF form. Rendering is a pure
// projection of record state and never mutates it.
package render

import (
	"bytes"
	"html/template"

	"tdsbill/internal/domain"
	"tdsbill/internal/format"
	"tdsbill/internal/tds"
)

// Renderer renders the invoice preview from a record snapshot.
type Renderer struct {
	catalog *tds.Catalog
	tmpl    *template.Template
}

// NewRenderer parses the invoice template once.
func NewRenderer(catalog *tds.Catalog) *Renderer {
	tmpl := template.Must(template.New("invoice").Funcs(template.FuncMap{
		"money": format.INR,
		"date":  format.DisplayDate,
		"fallback": func(s, def string) string {
			if s == "" {
				return def
			}
			return s
		},
		"inc": func(i int) int { return i + 1 },
		"qty": func(item domain.LineItem) string {
			if item.Basis == domain.BasisLumpSum {
				return ""
			}
			return format.Qty(item.Qty) + " " + item.Basis.QtySuffix()
		},
	}).Parse(invoiceTemplate))
	return &Renderer{catalog: catalog, tmpl: tmpl}
}

type previewData struct {
	Rec          domain.InvoiceRecord
	Totals       domain.Totals
	SectionLabel string
	// LogoURI is typed so html/template keeps the data URI; the value is
	// only ever built from sniffed image bytes in the logo package.
	LogoURI template.URL
}

// HTML renders the full invoice document for the given snapshot.
func (r *Renderer) HTML(rec domain.InvoiceRecord, totals domain.Totals) ([]byte, error) {
	data := previewData{
		Rec:          rec,
		Totals:       totals,
		SectionLabel: r.catalog.DisplayLabel(rec.ProviderPAN, rec.TDSSectionID),
		LogoURI:      template.URL(rec.LogoDataURI),
	}
	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

var invoiceTemplate = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <title>Consultancy Invoice</title>
  <style>
    body { font-family: 'Helvetica Neue', Arial, sans-serif; margin: 0; color: #111827; }
    .page { width: 210mm; min-height: 287mm; padding: 12mm; box-sizing: border-box; margin: 0 auto; background: #fff; display: flex; flex-direction: column; }
    .header { display: flex; justify-content: space-between; border-bottom: 2px solid #1f2937; padding-bottom: 12px; margin-bottom: 16px; }
    h1 { margin: 0 0 4px; font-size: 22px; text-transform: uppercase; }
    .muted { color: #6b7280; font-size: 11px; }
    .meta { margin-top: 12px; font-size: 12px; }
    .meta .k { color: #9ca3af; display: inline-block; width: 80px; }
    .client { text-align: right; max-width: 220px; }
    .client h2 { margin: 0; font-size: 15px; color: #4338ca; }
    .logo { height: 48px; object-fit: contain; margin-bottom: 8px; }
    .provider { margin-bottom: 20px; }
    .provider h3 { font-size: 9px; text-transform: uppercase; letter-spacing: 0.1em; color: #4f46e5; border-bottom: 1px solid #e0e7ff; padding-bottom: 2px; }
    .provider .name { font-weight: 700; font-size: 15px; text-transform: uppercase; }
    .address { white-space: pre-wrap; font-size: 12px; color: #4b5563; }
    table { width: 100%; border-collapse: collapse; font-size: 12px; }
    th { background: #1f2937; color: #fff; font-size: 10px; text-transform: uppercase; letter-spacing: 0.05em; padding: 6px 8px; text-align: left; }
    td { padding: 6px 8px; border-bottom: 1px solid #f3f4f6; }
    .num { text-align: right; }
    .ctr { text-align: center; }
    .summary { display: flex; justify-content: space-between; margin-top: 16px; border-top: 1px solid #f3f4f6; padding-top: 12px; }
    .declaration { max-width: 55%; background: #f9fafb; border: 1px solid #f3f4f6; border-radius: 6px; padding: 10px; font-size: 10px; }
    .declaration .tdsline { color: #4338ca; font-weight: 700; font-size: 11px; }
    .declaration .netline { font-weight: 700; font-size: 11px; }
    .totalbox { min-width: 240px; padding-left: 24px; font-size: 12px; }
    .totalbox .row { display: flex; justify-content: space-between; padding: 4px 0; }
    .totalbox .grand { background: #eef2ff; border: 1px solid #e0e7ff; border-radius: 4px; padding: 8px 10px; font-weight: 800; }
    .signatures { display: flex; gap: 64px; margin-top: 48px; }
    .signatures > div { flex: 1; text-align: center; border-top: 1px solid #d1d5db; padding-top: 4px; font-size: 12px; }
    .signatures .hint { font-size: 9px; color: #9ca3af; }
  </style>
</head>
<body>
<div class="page">
  <div class="header">
    <div>
      <h1>Consultancy Invoice</h1>
      <div class="muted">Professional Services Rendered</div>
      <div class="meta">
        {{if .Rec.InvoiceNumber}}<div><span class="k">Invoice No:</span> <strong>{{.Rec.InvoiceNumber}}</strong></div>{{end}}
        <div><span class="k">Date:</span> <strong>{{date .Rec.InvoiceDate}}</strong></div>
        {{if .Rec.PlaceOfIssue}}<div><span class="k">Place:</span> <strong>{{.Rec.PlaceOfIssue}}</strong></div>{{end}}
      </div>
    </div>
    <div class="client">
      {{if .LogoURI}}<img class="logo" src="{{.LogoURI}}" alt="Company Logo" />{{end}}
      <h2>{{fallback .Rec.ClientName "CLIENT NAME"}}</h2>
      <div class="address">{{fallback .Rec.ClientAddress "Client Address"}}</div>
      {{if .Rec.ClientPAN}}<div class="muted">PAN: {{.Rec.ClientPAN}}</div>{{end}}
      {{if .Rec.ClientGSTIN}}<div class="muted">GSTIN: {{.Rec.ClientGSTIN}}</div>{{end}}
    </div>
  </div>

  <div class="provider">
    <h3>Invoice Raised By</h3>
    <div class="name">{{fallback .Rec.ProviderName "YOUR NAME / FIRM"}}</div>
    <div class="address">{{fallback .Rec.ProviderAddress "Your Address"}}</div>
    <div class="muted">PAN: {{fallback .Rec.ProviderPAN "-"}}</div>
    {{if .Rec.ProviderAadhaar}}<div class="muted">Aadhaar: {{.Rec.ProviderAadhaar}}</div>{{end}}
    {{if .Rec.NatureOfService}}<div class="muted">Nature of Service: {{.Rec.NatureOfService}}</div>{{end}}
  </div>

  <table>
    <thead>
      <tr>
        <th class="ctr">Sl.</th>
        <th>Description</th>
        <th>Basis</th>
        <th class="num">Rate</th>
        <th class="ctr">Qty</th>
        <th class="num">Amount (&#8377;)</th>
      </tr>
    </thead>
    <tbody>
    {{range $i, $item := .Rec.Items}}
      <tr>
        <td class="ctr">{{inc $i}}</td>
        <td>{{fallback $item.Description "Description of service"}}</td>
        <td>{{$item.Basis}}</td>
        <td class="num">{{money $item.Rate}}</td>
        <td class="ctr">{{qty $item}}</td>
        <td class="num"><strong>{{money $item.Amount}}</strong></td>
      </tr>
    {{end}}
    </tbody>
  </table>

  <div class="summary">
    <div class="declaration">
      <em>I/We hereby declare that this invoice shows the actual price of services described and that all particulars are true and correct.</em>
      <div class="tdsline">TDS Details: ({{.SectionLabel}}) @ {{.Totals.TDSRate}}% = {{money .Totals.TDSAmount}}</div>
      <div class="netline">Net Amount Payable after TDS: {{money .Totals.NetPayable}}</div>
    </div>
    <div class="totalbox">
      <div class="row"><span>Gross Subtotal</span> <strong>{{money .Totals.Subtotal}}</strong></div>
      <div class="row grand"><span>Total Invoice Value</span> <span>{{money .Totals.Subtotal}}</span></div>
    </div>
  </div>

  <div class="signatures">
    <div>
      <div class="hint">Authorised Signature</div>
      <strong>{{fallback .Rec.ProviderName "Service Provider"}}</strong>
    </div>
    <div>
      <strong>{{fallback .Rec.AuthorizedSignatory "For Client"}}</strong>
      <div class="hint">(Authorised Signatory)</div>
    </div>
  </div>
</div>
</body>
</html>
`
