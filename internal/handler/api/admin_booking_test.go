//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"venuehub/internal/domain/booking"
	"venuehub/internal/handler/api"
	resdto "venuehub/internal/handler/dto/response"
	"venuehub/internal/usecase/commands"
	"venuehub/internal/usecase/queries"
	"venuehub/tests/common/httptest"
	commandsmock "venuehub/tests/mock/commands"
	queriesmock "venuehub/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AdminBookingHandlerTestSuite struct {
	suite.Suite
	router            *gin.Engine
	mockCtrl          *gomock.Controller
	mockCommands      *commandsmock.MockAdminBookingCommands
	mockQueries       *queriesmock.MockBookingQueries
	mockRefundQueries *queriesmock.MockRefundQueries
	handler           *api.AdminBookingHandler
}

func (s *AdminBookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAdminBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.mockRefundQueries = queriesmock.NewMockRefundQueries(s.mockCtrl)
	s.handler = api.NewAdminBookingHandler(s.mockCommands, s.mockQueries, s.mockRefundQueries)

	s.router.GET("/admin/bookings", s.handler.ListBookings)
	s.router.POST("/admin/bookings/:id/approve", s.handler.ApproveBooking)
	s.router.POST("/admin/bookings/:id/reject", s.handler.RejectBooking)
	s.router.POST("/admin/bookings/:id/items/:itemId/assign", s.handler.AssignVendor)
	s.router.GET("/admin/refunds", s.handler.ListRefunds)
}

func (s *AdminBookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAdminBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdminBookingHandlerTestSuite))
}

func (s *AdminBookingHandlerTestSuite) TestApproveBooking() {
	bookingID := uuid.New()
	url := "/admin/bookings/" + bookingID.String() + "/approve"

	s.Run("success: returns 204", func() {
		s.mockCommands.EXPECT().ApproveBooking(gomock.Any(), bookingID).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 422 when already rejected", func() {
		s.mockCommands.EXPECT().ApproveBooking(gomock.Any(), bookingID).
			Return(booking.ErrInvalidTransition).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "")
	})

	s.Run("error: 404 for unknown booking", func() {
		s.mockCommands.EXPECT().ApproveBooking(gomock.Any(), bookingID).
			Return(commands.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}

func (s *AdminBookingHandlerTestSuite) TestRejectBooking() {
	bookingID := uuid.New()
	url := "/admin/bookings/" + bookingID.String() + "/reject"

	s.Run("success: returns 204", func() {
		s.mockCommands.EXPECT().RejectBooking(gomock.Any(), bookingID, "double booked").Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"reason": "double booked"}, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 without a reason", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "reason")
	})
}

func (s *AdminBookingHandlerTestSuite) TestListBookings() {
	url := "/admin/bookings"

	s.Run("success: forwards status filter", func() {
		status := "pending"
		items := []*queries.BookingListItem{{ID: uuid.New(), Reference: "BK-0000000001", Status: "pending"}}
		s.mockQueries.EXPECT().ListByStatus(gomock.Any(), &status, 0).Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?status=pending", nil, "")

		var response []*resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
	})

	s.Run("error: 400 for unknown status", func() {
		status := "sideways"
		s.mockQueries.EXPECT().ListByStatus(gomock.Any(), &status, 0).
			Return(nil, queries.ErrInvalidStatus).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?status=sideways", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "status")
	})
}

func (s *AdminBookingHandlerTestSuite) TestAssignVendor() {
	bookingID := uuid.New()
	itemID := uuid.New()
	vendorID := uuid.New()
	url := "/admin/bookings/" + bookingID.String() + "/items/" + itemID.String() + "/assign"
	body := map[string]any{"vendor_id": vendorID.String()}

	s.Run("success: returns 204", func() {
		s.mockCommands.EXPECT().AssignVendor(gomock.Any(), bookingID, itemID, vendorID).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 422 when the vendor rejected this item before", func() {
		s.mockCommands.EXPECT().AssignVendor(gomock.Any(), bookingID, itemID, vendorID).
			Return(booking.ErrVendorPreviouslyRejected).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "previously rejected")
	})

	s.Run("error: 404 for unknown line item", func() {
		s.mockCommands.EXPECT().AssignVendor(gomock.Any(), bookingID, itemID, vendorID).
			Return(commands.ErrLineItemNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Line item")
	})
}

func (s *AdminBookingHandlerTestSuite) TestListRefunds() {
	url := "/admin/refunds"

	s.Run("success: returns refunds", func() {
		views := []*queries.RefundView{
			{
				ID:               uuid.New(),
				BookingID:        uuid.New(),
				BookingReference: "BK-0000000001",
				AmountCents:      160_00,
				Status:           "pending",
				Reason:           "booking cancelled",
				CreatedAt:        time.Now().UTC(),
			},
		}
		s.mockRefundQueries.EXPECT().List(gomock.Any(), 0).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response []*resdto.RefundResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
		s.Equal(int64(160_00), response[0].AmountCents)
	})
}
