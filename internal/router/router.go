package router

import (
	"github.com/gin-gonic/gin"

	"tdsbill/internal/handler"
	"tdsbill/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	draftH *handler.DraftHandler,
	tdsH *handler.TDSHandler,
	exportH *handler.ExportHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS())

	// Health check
	r.GET("/healthz", healthH.Liveness)

	// Rendered document + export targets
	r.GET("/preview", exportH.Preview)
	r.GET("/export/pdf", exportH.PDF)
	r.GET("/export/xlsx", exportH.XLSX)

	v1 := r.Group("/api/v1")

	// Draft routes
	d := v1.Group("/draft")
	d.GET("", draftH.Get)
	d.PATCH("", draftH.UpdateField)
	d.POST("/items", draftH.AddItem)
	d.PATCH("/items/:id", draftH.UpdateItem)
	d.DELETE("/items/:id", draftH.RemoveItem)
	d.POST("/logo", draftH.UploadLogo)

	// TDS catalog
	v1.GET("/tds/sections", tdsH.ListSections)

	return r
}
