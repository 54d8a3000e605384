package tds_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tdsbill/internal/domain"
	"tdsbill/internal/tds"
)

func TestIsIndividualOrHUF(t *testing.T) {
	t.Run("fourth_char_p", func(t *testing.T) {
		assert.True(t, tds.IsIndividualOrHUF("ABCPE1234F"))
	})

	t.Run("fourth_char_not_p", func(t *testing.T) {
		assert.False(t, tds.IsIndividualOrHUF("ABCXE1234F"))
	})

	t.Run("lowercase_normalized", func(t *testing.T) {
		assert.True(t, tds.IsIndividualOrHUF("abcpe1234f"))
	})

	t.Run("whitespace_trimmed", func(t *testing.T) {
		assert.True(t, tds.IsIndividualOrHUF("  ABCPE1234F  "))
	})

	t.Run("too_short", func(t *testing.T) {
		assert.False(t, tds.IsIndividualOrHUF("ABC"))
		assert.False(t, tds.IsIndividualOrHUF(""))
	})

	t.Run("partial_pan_with_four_chars", func(t *testing.T) {
		// Derivation works on partial entry as soon as 4 chars exist.
		assert.True(t, tds.IsIndividualOrHUF("ABCP"))
	})
}

func TestDeriveRate(t *testing.T) {
	c := tds.NewCatalog(tds.DefaultSections())

	t.Run("contractor_individual", func(t *testing.T) {
		assert.Equal(t, 1.0, c.DeriveRate("ABCPE1234F", "194C"))
	})

	t.Run("contractor_other", func(t *testing.T) {
		assert.Equal(t, 2.0, c.DeriveRate("ABCXE1234F", "194C"))
	})

	t.Run("professional_ignores_pan", func(t *testing.T) {
		assert.Equal(t, 10.0, c.DeriveRate("ABCPE1234F", "194J_PROF"))
		assert.Equal(t, 10.0, c.DeriveRate("ABCXE1234F", "194J_PROF"))
		assert.Equal(t, 10.0, c.DeriveRate("", "194J_PROF"))
	})

	t.Run("technical_services", func(t *testing.T) {
		assert.Equal(t, 2.0, c.DeriveRate("", "194J_TECH"))
	})

	t.Run("commission_and_rent", func(t *testing.T) {
		assert.Equal(t, 5.0, c.DeriveRate("", "194H"))
		assert.Equal(t, 10.0, c.DeriveRate("", "194I"))
	})

	t.Run("unknown_section_degrades_to_zero", func(t *testing.T) {
		assert.Equal(t, 0.0, c.DeriveRate("ABCPE1234F", "unknown"))
		assert.Equal(t, 0.0, c.DeriveRate("ABCPE1234F", ""))
	})
}

func TestDisplayLabel(t *testing.T) {
	c := tds.NewCatalog(tds.DefaultSections())

	assert.Equal(t, "Section 194C - Contractor (Indiv/HUF)", c.DisplayLabel("ABCPE1234F", "194C"))
	assert.Equal(t, "Section 194C - Contractor (Other)", c.DisplayLabel("ABCXE1234F", "194C"))
	assert.Equal(t, "Section 194J - Professional Fees", c.DisplayLabel("ABCPE1234F", "194J_PROF"))
	assert.Equal(t, "Section 194I - Rent", c.DisplayLabel("", "194I"))
	assert.Equal(t, "", c.DisplayLabel("ABCPE1234F", "missing"))
}

func TestCatalog_Sections(t *testing.T) {
	sections := tds.DefaultSections()
	c := tds.NewCatalog(sections)

	got := c.Sections()
	require.Len(t, got, 5)
	// Display order preserved
	assert.Equal(t, "194J_PROF", got[0].ID)
	assert.Equal(t, "194I", got[4].ID)
}

func TestCatalog_ConfiguredRates(t *testing.T) {
	// Revised rates arrive as data, not code.
	c := tds.NewCatalog([]domain.TDSSection{
		{ID: "194C", Code: "194C", Label: "Contractor / Sub-Contractor", RateDefault: 3, RateIndivHUF: 1.5},
	})
	assert.Equal(t, 1.5, c.DeriveRate("ABCPE1234F", "194C"))
	assert.Equal(t, 3.0, c.DeriveRate("ABCXE1234F", "194C"))
}

func TestCatalog_Lookup(t *testing.T) {
	c := tds.NewCatalog(tds.DefaultSections())

	s, ok := c.Lookup("194H")
	require.True(t, ok)
	assert.Equal(t, "Commission / Brokerage", s.Label)

	_, ok = c.Lookup("194Z")
	assert.False(t, ok)
}
