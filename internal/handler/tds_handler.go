package handler

import (
	"github.com/gin-gonic/gin"

	"tdsbill/internal/domain"
	"tdsbill/internal/draft"
	"tdsbill/internal/tds"
)

// SectionView is a catalog entry decorated with the effective rate and
// display label for the current provider PAN, so the form can show the
// auto-detected contractor split.
type SectionView struct {
	domain.TDSSection
	DisplayLabel  string  `json:"display_label"`
	EffectiveRate float64 `json:"effective_rate"`
}

// TDSHandler handles TDS catalog endpoints.
type TDSHandler struct {
	catalog      *tds.Catalog
	draftService draft.Service
}

// NewTDSHandler creates a new TDSHandler.
func NewTDSHandler(catalog *tds.Catalog, draftService draft.Service) *TDSHandler {
	return &TDSHandler{catalog: catalog, draftService: draftService}
}

// ListSections handles GET /api/v1/tds/sections
// @Summary List TDS sections
// @Description Catalog of TDS sections with rates effective for the current provider PAN
// @Tags tds
// @Produce json
// @Success 200 {object} APIResponse
// @Router /tds/sections [get]
func (h *TDSHandler) ListSections(c *gin.Context) {
	rec, _ := h.draftService.Snapshot()

	sections := h.catalog.Sections()
	views := make([]SectionView, 0, len(sections))
	for _, s := range sections {
		views = append(views, SectionView{
			TDSSection:    s,
			DisplayLabel:  h.catalog.DisplayLabel(rec.ProviderPAN, s.ID),
			EffectiveRate: h.catalog.DeriveRate(rec.ProviderPAN, s.ID),
		})
	}
	RespondOK(c, gin.H{
		"sections":          views,
		"individual_or_huf": tds.IsIndividualOrHUF(rec.ProviderPAN),
	})
}
