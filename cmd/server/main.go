package main

import (
	"fmt"
	"log"
	"time"

	"tdsbill/internal/config"
	"tdsbill/internal/draft"
	"tdsbill/internal/handler"
	"tdsbill/internal/logo"
	"tdsbill/internal/render"
	"tdsbill/internal/router"
	"tdsbill/internal/tds"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Reference data and the single session draft
	catalog := tds.NewCatalog(cfg.TDS.Sections())
	draftSvc := draft.NewService(catalog, time.Now)
	logoReader := logo.NewReader(cfg.Logo.MaxSizeMB)

	// Rendering
	renderer := render.NewRenderer(catalog)
	pdfRenderer := render.NewPDFRenderer(renderer, cfg.PDF)

	// Handlers
	draftH := handler.NewDraftHandler(draftSvc, logoReader)
	tdsH := handler.NewTDSHandler(catalog, draftSvc)
	exportH := handler.NewExportHandler(draftSvc, renderer, pdfRenderer, catalog)
	healthH := handler.NewHealthHandler()

	r := router.Setup(draftH, tdsH, exportH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
