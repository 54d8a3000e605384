package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tdsbill/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 30*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, "development", cfg.Server.Environment)
	assert.Equal(t, int64(5), cfg.Logo.MaxSizeMB)
	assert.Empty(t, cfg.PDF.ChromiumPath)
	assert.Equal(t, 15*time.Second, cfg.PDF.Timeout)

	assert.Equal(t, 10.0, cfg.TDS.ProfessionalRate)
	assert.Equal(t, 2.0, cfg.TDS.TechnicalRate)
	assert.Equal(t, 2.0, cfg.TDS.ContractorRate)
	assert.Equal(t, 1.0, cfg.TDS.ContractorIndivRate)
	assert.Equal(t, 5.0, cfg.TDS.CommissionRate)
	assert.Equal(t, 10.0, cfg.TDS.RentRate)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("TDSBILL_SERVER_PORT", ":9090")
	t.Setenv("TDSBILL_LOGO_MAX_SIZE_MB", "2")
	t.Setenv("TDSBILL_TDS_CONTRACTOR_RATE", "3")
	t.Setenv("TDSBILL_PDF_TIMEOUT", "30s")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Port)
	assert.Equal(t, int64(2), cfg.Logo.MaxSizeMB)
	assert.Equal(t, 3.0, cfg.TDS.ContractorRate)
	assert.Equal(t, 30*time.Second, cfg.PDF.Timeout)
}

func TestTDSConfig_Sections(t *testing.T) {
	tdsCfg := config.TDSConfig{
		ProfessionalRate:    12,
		TechnicalRate:       3,
		ContractorRate:      4,
		ContractorIndivRate: 2,
		CommissionRate:      6,
		RentRate:            11,
	}

	sections := tdsCfg.Sections()
	require.Len(t, sections, 5)
	assert.Equal(t, "194J_PROF", sections[0].ID)
	assert.Equal(t, 12.0, sections[0].RateDefault)
	assert.Equal(t, 4.0, sections[2].RateDefault)
	assert.Equal(t, 2.0, sections[2].RateIndivHUF)
	assert.Zero(t, sections[0].RateIndivHUF, "only the contractor section splits on payee category")
}
