package api

import (
	"errors"
	"net/http"

	"venuehub/internal/domain/booking"
	reqdto "venuehub/internal/handler/dto/request"
	resdto "venuehub/internal/handler/dto/response"
	"venuehub/internal/usecase/commands"
	"venuehub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AdminBookingHandler struct {
	adminCommands  commands.AdminBookingCommands
	bookingQueries queries.BookingQueries
	refundQueries  queries.RefundQueries
}

func NewAdminBookingHandler(adminCommands commands.AdminBookingCommands, bookingQueries queries.BookingQueries, refundQueries queries.RefundQueries) *AdminBookingHandler {
	return &AdminBookingHandler{
		adminCommands:  adminCommands,
		bookingQueries: bookingQueries,
		refundQueries:  refundQueries,
	}
}

// @Summary Approve booking
// @Description Approve a pending or edited booking and auto-assign default vendors
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/bookings/{id}/approve [post]
func (h *AdminBookingHandler) ApproveBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	if err := h.adminCommands.ApproveBooking(c.Request.Context(), id); err != nil {
		h.respondTransitionError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Reject booking
// @Description Reject a pending or edited booking with a reason
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.RejectBookingRequest true "Rejection reason"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/bookings/{id}/reject [post]
func (h *AdminBookingHandler) RejectBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	var req reqdto.RejectBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Rejection reason is required",
		})
		return
	}

	if err := h.adminCommands.RejectBooking(c.Request.Context(), id, req.Reason); err != nil {
		h.respondTransitionError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary List bookings
// @Description List all bookings, optionally filtered by effective status
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status filter (pending, approved, rejected, cancelled, completed, edited)"
// @Param limit query int false "Page size (max 200, default 50)"
// @Success 200 {array} resdto.BookingListResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /admin/bookings [get]
func (h *AdminBookingHandler) ListBookings(c *gin.Context) {
	var status *string
	if raw := c.Query("status"); raw != "" {
		status = &raw
	}
	limit := parseLimit(c.Query("limit"))

	items, err := h.bookingQueries.ListByStatus(c.Request.Context(), status, limit)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid status filter",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	page := resdto.FromBookingListItems(items, nil)
	c.JSON(http.StatusOK, page.Bookings)
}

// @Summary Assign vendor
// @Description Assign a vendor to a booking line item
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param itemId path string true "Line item ID"
// @Param request body reqdto.AssignVendorRequest true "Vendor to assign"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/bookings/{id}/items/{itemId}/assign [post]
func (h *AdminBookingHandler) AssignVendor(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}
	itemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid line item ID format",
		})
		return
	}

	var req reqdto.AssignVendorRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	err = h.adminCommands.AssignVendor(c.Request.Context(), bookingID, itemID, req.VendorID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errors.Is(err, commands.ErrLineItemNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Line item not found",
			})
		case errors.Is(err, booking.ErrVendorPreviouslyRejected):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Vendor has previously rejected this line item",
			})
		case errors.Is(err, booking.ErrItemNotAssignable):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Line item cannot be assigned in its current status",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary List refunds
// @Description List refunds, newest first
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size (max 200, default 50)"
// @Success 200 {array} resdto.RefundResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /admin/refunds [get]
func (h *AdminBookingHandler) ListRefunds(c *gin.Context) {
	limit := parseLimit(c.Query("limit"))

	views, err := h.refundQueries.List(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromRefundViews(views))
}

func (h *AdminBookingHandler) respondTransitionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Booking not found",
		})
	case errors.Is(err, booking.ErrInvalidTransition):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Booking cannot change to the requested status",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
