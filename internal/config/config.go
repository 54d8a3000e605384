package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"

	"tdsbill/internal/domain"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	Log    LogConfig
	Logo   LogoConfig
	PDF    PDFConfig
	TDS    TDSConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// LogoConfig holds logo upload settings.
type LogoConfig struct {
	MaxSizeMB int64 `mapstructure:"max_size_mb"`
}

// PDFConfig holds settings for the headless-Chromium print pipeline.
type PDFConfig struct {
	ChromiumPath string        `mapstructure:"chromium_path"`
	Timeout      time.Duration `mapstructure:"timeout"`
}

// TDSConfig holds the TDS rate table. Statutory rates change by
// notification, so they are configuration data rather than code.
type TDSConfig struct {
	ProfessionalRate    float64 `mapstructure:"professional_rate"`
	TechnicalRate       float64 `mapstructure:"technical_rate"`
	ContractorRate      float64 `mapstructure:"contractor_rate"`
	ContractorIndivRate float64 `mapstructure:"contractor_indiv_rate"`
	CommissionRate      float64 `mapstructure:"commission_rate"`
	RentRate            float64 `mapstructure:"rent_rate"`
}

// Sections materializes the section catalog entries with the configured
// rates applied.
func (t *TDSConfig) Sections() []domain.TDSSection {
	return []domain.TDSSection{
		{ID: "194J_PROF", Code: "194J", Label: "Professional Fees", RateDefault: t.ProfessionalRate},
		{ID: "194J_TECH", Code: "194J", Label: "Technical Services", RateDefault: t.TechnicalRate},
		{ID: "194C", Code: "194C", Label: "Contractor / Sub-Contractor", RateDefault: t.ContractorRate, RateIndivHUF: t.ContractorIndivRate},
		{ID: "194H", Code: "194H", Label: "Commission / Brokerage", RateDefault: t.CommissionRate},
		{ID: "194I", Code: "194I", Label: "Rent", RateDefault: t.RentRate},
	}
}

// Load reads configuration from environment variables with the TDSBILL_
// prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("TDSBILL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.environment", "development")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// Logo defaults
	v.SetDefault("logo.max_size_mb", 5)

	// PDF defaults
	v.SetDefault("pdf.chromium_path", "")
	v.SetDefault("pdf.timeout", "15s")

	// TDS rate defaults (FY rates; override by notification)
	v.SetDefault("tds.professional_rate", 10.0)
	v.SetDefault("tds.technical_rate", 2.0)
	v.SetDefault("tds.contractor_rate", 2.0)
	v.SetDefault("tds.contractor_indiv_rate", 1.0)
	v.SetDefault("tds.commission_rate", 5.0)
	v.SetDefault("tds.rent_rate", 10.0)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":               "TDSBILL_SERVER_PORT",
		"server.read_timeout":       "TDSBILL_SERVER_READ_TIMEOUT",
		"server.write_timeout":      "TDSBILL_SERVER_WRITE_TIMEOUT",
		"server.environment":        "TDSBILL_SERVER_ENVIRONMENT",
		"log.level":                 "TDSBILL_LOG_LEVEL",
		"log.format":                "TDSBILL_LOG_FORMAT",
		"logo.max_size_mb":          "TDSBILL_LOGO_MAX_SIZE_MB",
		"pdf.chromium_path":         "TDSBILL_PDF_CHROMIUM_PATH",
		"pdf.timeout":               "TDSBILL_PDF_TIMEOUT",
		"tds.professional_rate":     "TDSBILL_TDS_PROFESSIONAL_RATE",
		"tds.technical_rate":        "TDSBILL_TDS_TECHNICAL_RATE",
		"tds.contractor_rate":       "TDSBILL_TDS_CONTRACTOR_RATE",
		"tds.contractor_indiv_rate": "TDSBILL_TDS_CONTRACTOR_INDIV_RATE",
		"tds.commission_rate":       "TDSBILL_TDS_COMMISSION_RATE",
		"tds.rent_rate":             "TDSBILL_TDS_RENT_RATE",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}
	cfg.Server = ServerConfig{
		Port:         v.GetString("server.port"),
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	cfg.Logo = LogoConfig{
		MaxSizeMB: v.GetInt64("logo.max_size_mb"),
	}
	cfg.PDF = PDFConfig{
		ChromiumPath: v.GetString("pdf.chromium_path"),
		Timeout:      v.GetDuration("pdf.timeout"),
	}
	cfg.TDS = TDSConfig{
		ProfessionalRate:    v.GetFloat64("tds.professional_rate"),
		TechnicalRate:       v.GetFloat64("tds.technical_rate"),
		ContractorRate:      v.GetFloat64("tds.contractor_rate"),
		ContractorIndivRate: v.GetFloat64("tds.contractor_indiv_rate"),
		CommissionRate:      v.GetFloat64("tds.commission_rate"),
		RentRate:            v.GetFloat64("tds.rent_rate"),
	}

	return cfg, nil
}
