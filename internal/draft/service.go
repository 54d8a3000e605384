// Package draft owns the single in-memory invoice record for the
// session and every mutation applied to it. Derived values (item
// amounts, totals) are recomputed on each change or snapshot so they can
// never go stale.
package draft

import (
	"log"
	"math"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"tdsbill/internal/domain"
	"tdsbill/internal/tds"
)

// DefaultTDSSectionID is the section preselected on a fresh draft.
const DefaultTDSSectionID = "194J_PROF"

// Service defines the invoice draft contract. All mutations are
// synchronous; SetLogo is the delivery point of the one asynchronous
// operation (the logo file read).
type Service interface {
	Snapshot() (domain.InvoiceRecord, domain.Totals)
	UpdateField(field, value string) error
	UpdateItem(itemID uuid.UUID, field, value string) error
	AddItem() domain.LineItem
	RemoveItem(itemID uuid.UUID) error
	SetLogo(dataURI string)
}

type service struct {
	mu      sync.Mutex
	rec     domain.InvoiceRecord
	catalog *tds.Catalog
	now     func() time.Time
}

// NewService creates the session draft: empty fields, today's date, the
// default TDS section, and exactly one blank line item.
func NewService(catalog *tds.Catalog, now func() time.Time) Service {
	if now == nil {
		now = time.Now
	}
	s := &service{catalog: catalog, now: now}
	s.rec = domain.InvoiceRecord{
		InvoiceDate:  now().Format("2006-01-02"),
		Items:        []domain.LineItem{newLineItem()},
		TDSSectionID: DefaultTDSSectionID,
	}
	return s
}

func newLineItem() domain.LineItem {
	return domain.LineItem{
		ID:    uuid.New(),
		Basis: domain.BasisPerDay,
		Rate:  0,
		Qty:   1,
	}
}

func (s *service) Snapshot() (domain.InvoiceRecord, domain.Totals) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.rec
	rec.Items = make([]domain.LineItem, len(s.rec.Items))
	copy(rec.Items, s.rec.Items)

	return rec, s.totalsLocked()
}

// totalsLocked recomputes the aggregate derived values. Caller holds mu.
func (s *service) totalsLocked() domain.Totals {
	var subtotal float64
	for idx := range s.rec.Items {
		subtotal += s.rec.Items[idx].Amount
	}
	rate := s.catalog.DeriveRate(s.rec.ProviderPAN, s.rec.TDSSectionID)
	tdsAmount := subtotal * rate / 100
	return domain.Totals{
		Subtotal:   subtotal,
		TDSRate:    rate,
		TDSAmount:  tdsAmount,
		NetPayable: subtotal - tdsAmount,
	}
}

func (s *service) UpdateField(field, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch field {
	case "provider_name":
		s.rec.ProviderName = value
	case "provider_address":
		s.rec.ProviderAddress = value
	case "provider_pan":
		s.rec.ProviderPAN = value
	case "provider_aadhaar":
		s.rec.ProviderAadhaar = value
	case "provider_contact":
		s.rec.ProviderContact = value
	case "provider_email":
		s.rec.ProviderEmail = value
	case "nature_of_service":
		s.rec.NatureOfService = value
	case "client_name":
		s.rec.ClientName = value
	case "client_address":
		s.rec.ClientAddress = value
	case "client_pan":
		s.rec.ClientPAN = value
	case "client_gstin":
		s.rec.ClientGSTIN = value
	case "authorized_signatory":
		s.rec.AuthorizedSignatory = value
	case "invoice_number":
		s.rec.InvoiceNumber = value
	case "invoice_date":
		s.rec.InvoiceDate = value
	case "place_of_issue":
		s.rec.PlaceOfIssue = value
	case "payment_reference":
		s.rec.PaymentReference = value
	case "tds_section_id":
		// An unresolved section degrades to a 0% rate at derivation time;
		// the selection itself is accepted as-is.
		s.rec.TDSSectionID = value
	default:
		return domain.ErrUnknownField
	}
	return nil
}

func (s *service) UpdateItem(itemID uuid.UUID, field, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := s.findItemLocked(itemID)
	if item == nil {
		return domain.ErrItemNotFound
	}

	switch field {
	case "description":
		item.Description = value
	case "basis":
		basis := domain.ChargingBasis(strings.TrimSpace(value))
		if !basis.Valid() {
			return domain.ErrUnknownBasis
		}
		item.Basis = basis
	case "rate":
		item.Rate = coerceNumber(value)
	case "qty":
		item.Qty = coerceNumber(value)
	default:
		return domain.ErrUnknownField
	}

	// Amount uses the post-update basis, rate, and qty.
	item.Recompute()
	return nil
}

func (s *service) AddItem() domain.LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := newLineItem()
	s.rec.Items = append(s.rec.Items, item)
	return item
}

func (s *service) RemoveItem(itemID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findItemLocked(itemID) == nil {
		return domain.ErrItemNotFound
	}
	// At least one line item must always exist for the preview to render
	// a table; removing the sole remaining item is a no-op.
	if len(s.rec.Items) == 1 {
		return nil
	}

	items := s.rec.Items[:0]
	for idx := range s.rec.Items {
		if s.rec.Items[idx].ID != itemID {
			items = append(items, s.rec.Items[idx])
		}
	}
	s.rec.Items = items
	return nil
}

func (s *service) SetLogo(dataURI string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Last-write-wins: a second logo selection simply overwrites
	// whichever read resolves last.
	s.rec.LogoDataURI = dataURI
	log.Printf("draftService.SetLogo: logo updated (%d bytes)", len(dataURI))
}

func (s *service) findItemLocked(itemID uuid.UUID) *domain.LineItem {
	for idx := range s.rec.Items {
		if s.rec.Items[idx].ID == itemID {
			return &s.rec.Items[idx]
		}
	}
	return nil
}

// coerceNumber parses a rate or quantity entry. Non-numeric or negative
// input is substituted with 0 rather than rejected, so data entry is
// never blocked on a parse failure. ParseFloat accepts "nan" and "inf",
// which would poison every derived total, so those coerce to 0 as well.
func coerceNumber(value string) float64 {
	n, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || n < 0 || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0
	}
	return n
}
