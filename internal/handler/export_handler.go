package handler

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tdsbill/internal/draft"
	"tdsbill/internal/export"
	"tdsbill/internal/render"
	"tdsbill/internal/tds"
)

// ExportHandler serves the rendered preview and the print/export targets.
type ExportHandler struct {
	draftService draft.Service
	renderer     *render.Renderer
	pdf          *render.PDFRenderer
	catalog      *tds.Catalog
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(draftService draft.Service, renderer *render.Renderer, pdf *render.PDFRenderer, catalog *tds.Catalog) *ExportHandler {
	return &ExportHandler{draftService: draftService, renderer: renderer, pdf: pdf, catalog: catalog}
}

// Preview handles GET /preview
// @Summary Invoice preview
// @Description Render the current draft as the print-ready HTML document
// @Tags export
// @Produce html
// @Success 200 {string} string "Invoice HTML"
// @Router /preview [get]
func (h *ExportHandler) Preview(c *gin.Context) {
	rec, totals := h.draftService.Snapshot()
	html, err := h.renderer.HTML(rec, totals)
	if err != nil {
		log.Printf("exportHandler.Preview: render failed: %v", err)
		RespondError(c, http.StatusInternalServerError, "RENDER_FAILED", "preview render failed")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", html)
}

// PDF handles GET /export/pdf
// @Summary Export as PDF
// @Description Print the current draft to PDF via headless Chromium
// @Tags export
// @Produce application/pdf
// @Success 200 {file} binary "Invoice PDF"
// @Failure 500 {object} APIResponse "Print pipeline unavailable"
// @Router /export/pdf [get]
func (h *ExportHandler) PDF(c *gin.Context) {
	rec, totals := h.draftService.Snapshot()
	pdf, err := h.pdf.Render(c.Request.Context(), rec, totals)
	if err != nil {
		log.Printf("exportHandler.PDF: print failed: %v", err)
		RespondError(c, http.StatusInternalServerError, "PDF_FAILED", "PDF export failed; is Chromium installed?")
		return
	}
	c.Header("Content-Disposition", `attachment; filename="invoice.pdf"`)
	c.Header("Content-Length", strconv.Itoa(len(pdf)))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// XLSX handles GET /export/xlsx
// @Summary Export as XLSX
// @Description Write the current draft as a spreadsheet workbook
// @Tags export
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary "Invoice workbook"
// @Router /export/xlsx [get]
func (h *ExportHandler) XLSX(c *gin.Context) {
	rec, totals := h.draftService.Snapshot()
	label := h.catalog.DisplayLabel(rec.ProviderPAN, rec.TDSSectionID)

	wb, err := export.Workbook(rec, totals, label)
	if err != nil {
		log.Printf("exportHandler.XLSX: build failed: %v", err)
		RespondError(c, http.StatusInternalServerError, "XLSX_FAILED", "XLSX export failed")
		return
	}
	defer func() { _ = wb.Close() }()

	c.Header("Content-Disposition", `attachment; filename="invoice.xlsx"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := wb.Write(c.Writer); err != nil {
		log.Printf("exportHandler.XLSX: write failed: %v", err)
	}
}
