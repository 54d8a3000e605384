package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"tdsbill/internal/domain"
	"tdsbill/internal/draft"
	"tdsbill/internal/logo"
)

// FieldUpdateRequest is the DTO for record-level scalar field updates.
// Value is always carried as text, mirroring form input; numeric fields
// are coerced downstream.
type FieldUpdateRequest struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}

// ItemUpdateRequest is the DTO for line-item field updates.
type ItemUpdateRequest struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}

// DraftHandler handles invoice draft endpoints.
type DraftHandler struct {
	draftService draft.Service
	logoReader   *logo.Reader
}

// NewDraftHandler creates a new DraftHandler.
func NewDraftHandler(draftService draft.Service, logoReader *logo.Reader) *DraftHandler {
	return &DraftHandler{draftService: draftService, logoReader: logoReader}
}

// Get handles GET /api/v1/draft
// @Summary Get the current draft
// @Description Snapshot of the invoice record with derived totals and the selectable charging bases
// @Tags draft
// @Produce json
// @Success 200 {object} APIResponse
// @Router /draft [get]
func (h *DraftHandler) Get(c *gin.Context) {
	rec, totals := h.draftService.Snapshot()
	RespondOK(c, gin.H{"record": rec, "totals": totals, "charging_bases": domain.ChargingBases})
}

// UpdateField handles PATCH /api/v1/draft
// @Summary Update a record field
// @Description Set one scalar field of the draft by wire name
// @Tags draft
// @Accept json
// @Produce json
// @Param body body FieldUpdateRequest true "Field update"
// @Success 200 {object} APIResponse
// @Failure 400 {object} APIResponse "Unknown field"
// @Router /draft [patch]
func (h *DraftHandler) UpdateField(c *gin.Context) {
	var req FieldUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", "field is required")
		return
	}
	if err := h.draftService.UpdateField(req.Field, req.Value); err != nil {
		HandleError(c, err)
		return
	}
	rec, totals := h.draftService.Snapshot()
	RespondOK(c, gin.H{"record": rec, "totals": totals})
}

// AddItem handles POST /api/v1/draft/items
// @Summary Add a line item
// @Description Append a blank line item to the draft
// @Tags draft
// @Produce json
// @Success 201 {object} APIResponse
// @Router /draft/items [post]
func (h *DraftHandler) AddItem(c *gin.Context) {
	item := h.draftService.AddItem()
	RespondCreated(c, item)
}

// UpdateItem handles PATCH /api/v1/draft/items/:id
// @Summary Update a line item field
// @Description Set one field of a line item; the amount is recomputed
// @Tags draft
// @Accept json
// @Produce json
// @Param id path string true "Item ID (UUID)"
// @Param body body ItemUpdateRequest true "Item field update"
// @Success 200 {object} APIResponse
// @Failure 400 {object} APIResponse "Invalid ID or unknown field"
// @Failure 404 {object} APIResponse "Item not found"
// @Router /draft/items/{id} [patch]
func (h *DraftHandler) UpdateItem(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid item ID")
		return
	}
	var req ItemUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", "field is required")
		return
	}
	if err := h.draftService.UpdateItem(itemID, req.Field, req.Value); err != nil {
		HandleError(c, err)
		return
	}
	rec, totals := h.draftService.Snapshot()
	RespondOK(c, gin.H{"record": rec, "totals": totals})
}

// RemoveItem handles DELETE /api/v1/draft/items/:id
// @Summary Remove a line item
// @Description Remove a line item; removing the sole remaining item is a no-op
// @Tags draft
// @Produce json
// @Param id path string true "Item ID (UUID)"
// @Success 200 {object} APIResponse
// @Failure 400 {object} APIResponse "Invalid ID"
// @Failure 404 {object} APIResponse "Item not found"
// @Router /draft/items/{id} [delete]
func (h *DraftHandler) RemoveItem(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid item ID")
		return
	}
	if err := h.draftService.RemoveItem(itemID); err != nil {
		HandleError(c, err)
		return
	}
	rec, totals := h.draftService.Snapshot()
	RespondOK(c, gin.H{"record": rec, "totals": totals})
}

// UploadLogo handles POST /api/v1/draft/logo
// @Summary Upload a client logo
// @Description Accepts a JPG/PNG image and resolves it into the draft asynchronously
// @Tags draft
// @Accept multipart/form-data
// @Produce json
// @Param logo formData file true "Logo image (JPG or PNG)"
// @Success 202 {object} APIResponse "Logo accepted"
// @Failure 400 {object} APIResponse "Missing file or unsupported type"
// @Failure 413 {object} APIResponse "Logo too large"
// @Router /draft/logo [post]
func (h *DraftHandler) UploadLogo(c *gin.Context) {
	file, _, err := c.Request.FormFile("logo")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "logo field is required")
		return
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "READ_FAILED", "could not read uploaded file")
		return
	}

	if err := h.logoReader.Attach(data, h.draftService); err != nil {
		HandleError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, APIResponse{Success: true, Data: gin.H{"message": "logo accepted"}})
}
