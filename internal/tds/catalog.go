// Package tds holds the TDS section catalog and the effective-rate
// derivation used by the invoice draft. Rates are reference data, not
// logic: the catalog is built from section entries so revised rates can
// be supplied through configuration without code changes.
package tds

import (
	"fmt"
	"strings"

	"tdsbill/internal/domain"
)

// DefaultSections returns the built-in section catalog. 194C is the one
// section whose rate splits on the payee category derived from the PAN.
func DefaultSections() []domain.TDSSection {
	return []domain.TDSSection{
		{ID: "194J_PROF", Code: "194J", Label: "Professional Fees", RateDefault: 10},
		{ID: "194J_TECH", Code: "194J", Label: "Technical Services", RateDefault: 2},
		{ID: "194C", Code: "194C", Label: "Contractor / Sub-Contractor", RateDefault: 2, RateIndivHUF: 1},
		{ID: "194H", Code: "194H", Label: "Commission / Brokerage", RateDefault: 5},
		{ID: "194I", Code: "194I", Label: "Rent", RateDefault: 10},
	}
}

// Catalog provides in-memory lookups over the TDS section reference data.
// It is immutable after construction and safe for concurrent access.
type Catalog struct {
	byID    map[string]domain.TDSSection
	ordered []domain.TDSSection
}

// NewCatalog builds a Catalog from section entries, preserving order for
// form display.
func NewCatalog(sections []domain.TDSSection) *Catalog {
	m := make(map[string]domain.TDSSection, len(sections))
	for idx := range sections {
		m[sections[idx].ID] = sections[idx]
	}
	return &Catalog{byID: m, ordered: sections}
}

// Sections returns all catalog entries in display order.
func (c *Catalog) Sections() []domain.TDSSection {
	out := make([]domain.TDSSection, len(c.ordered))
	copy(out, c.ordered)
	return out
}

// Lookup returns the section with the given ID.
func (c *Catalog) Lookup(sectionID string) (domain.TDSSection, bool) {
	s, ok := c.byID[sectionID]
	return s, ok
}

// IsIndividualOrHUF reports whether the PAN denotes an individual or HUF
// payee. The 4th character of a PAN encodes the holder category; 'P'
// means individual. The input is trimmed and upper-cased first.
func IsIndividualOrHUF(pan string) bool {
	p := strings.ToUpper(strings.TrimSpace(pan))
	return len(p) >= 4 && p[3] == 'P'
}

// DeriveRate returns the effective TDS percentage for the provider PAN
// and selected section. An unresolved section degrades to 0 so the
// preview still renders.
func (c *Catalog) DeriveRate(providerPAN, sectionID string) float64 {
	section, ok := c.byID[sectionID]
	if !ok {
		return 0
	}
	if section.RateIndivHUF > 0 && IsIndividualOrHUF(providerPAN) {
		return section.RateIndivHUF
	}
	return section.RateDefault
}

// DisplayLabel returns the section label shown on the invoice document,
// with the payee-category suffix for split sections.
func (c *Catalog) DisplayLabel(providerPAN, sectionID string) string {
	section, ok := c.byID[sectionID]
	if !ok {
		return ""
	}
	if section.RateIndivHUF > 0 {
		if IsIndividualOrHUF(providerPAN) {
			return fmt.Sprintf("Section %s - Contractor (Indiv/HUF)", section.Code)
		}
		return fmt.Sprintf("Section %s - Contractor (Other)", section.Code)
	}
	return fmt.Sprintf("Section %s - %s", section.Code, section.Label)
}
