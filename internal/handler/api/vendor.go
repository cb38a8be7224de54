package api

import (
	"errors"
	"net/http"

	"venuehub/internal/domain/booking"
	reqdto "venuehub/internal/handler/dto/request"
	resdto "venuehub/internal/handler/dto/response"
	"venuehub/internal/handler/middleware"
	"venuehub/internal/usecase/commands"
	"venuehub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type VendorHandler struct {
	vendorCommands commands.VendorCommands
	vendorQueries  queries.VendorQueries
}

func NewVendorHandler(vendorCommands commands.VendorCommands, vendorQueries queries.VendorQueries) *VendorHandler {
	return &VendorHandler{
		vendorCommands: vendorCommands,
		vendorQueries:  vendorQueries,
	}
}

// @Summary List assigned items
// @Description List line items assigned to the current vendor
// @Tags vendor
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.VendorItemResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /vendor/items [get]
func (h *VendorHandler) ListItems(c *gin.Context) {
	vendorID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, err := h.vendorQueries.ListAssignedItems(c.Request.Context(), vendorID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromVendorItemViews(views))
}

// @Summary Confirm item
// @Description Confirm a line item assigned to the current vendor
// @Tags vendor
// @Produce json
// @Security BearerAuth
// @Param id path string true "Line item ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /vendor/items/{id}/confirm [post]
func (h *VendorHandler) ConfirmItem(c *gin.Context) {
	vendorID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid line item ID format",
		})
		return
	}

	if err := h.vendorCommands.ConfirmItem(c.Request.Context(), itemID, vendorID); err != nil {
		h.respondItemError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Reject item
// @Description Reject a line item assigned to the current vendor, with an optional note
// @Tags vendor
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Line item ID"
// @Param request body reqdto.VendorRejectItemRequest false "Rejection note"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /vendor/items/{id}/reject [post]
func (h *VendorHandler) RejectItem(c *gin.Context) {
	vendorID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid line item ID format",
		})
		return
	}

	var req reqdto.VendorRejectItemRequest
	_ = c.ShouldBindJSON(&req)

	if err := h.vendorCommands.RejectItem(c.Request.Context(), itemID, vendorID, req.GetNote()); err != nil {
		h.respondItemError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *VendorHandler) respondItemError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrLineItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Line item not found",
		})
	case errors.Is(err, booking.ErrVendorMismatch):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Line item is assigned to a different vendor",
		})
	case errors.Is(err, booking.ErrItemNotPending):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Line item is not awaiting vendor response",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
