//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"venuehub/internal/domain/booking"
	"venuehub/internal/domain/user"
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

type VendorHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockVendorCommands
	mockQueries  *queriesmock.MockVendorQueries
	handler      *api.VendorHandler
	vendorID     uuid.UUID
}

func (s *VendorHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockVendorCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockVendorQueries(s.mockCtrl)
	s.handler = api.NewVendorHandler(s.mockCommands, s.mockQueries)
	s.vendorID = uuid.New()

	s.router.Use(func(c *gin.Context) {
		c.Set("user_id", s.vendorID)
		c.Set("user_role", user.RoleVendor)
	})
	s.router.GET("/vendor/items", s.handler.ListItems)
	s.router.POST("/vendor/items/:id/confirm", s.handler.ConfirmItem)
	s.router.POST("/vendor/items/:id/reject", s.handler.RejectItem)
}

func (s *VendorHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestVendorHandlerSuite(t *testing.T) {
	suite.Run(t, new(VendorHandlerTestSuite))
}

func (s *VendorHandlerTestSuite) TestListItems() {
	s.Run("success: returns assigned items", func() {
		views := []*queries.VendorItemView{
			{
				ID:               uuid.New(),
				BookingID:        uuid.New(),
				BookingReference: "BK-0000000001",
				SpaceName:        "Main Hall",
				StartsAt:         time.Now().UTC(),
				EndsAt:           time.Now().UTC().Add(2 * time.Hour),
				CatalogItemName:  "Catering",
				Quantity:         2,
				Status:           "pending",
			},
		}
		s.mockQueries.EXPECT().ListAssignedItems(gomock.Any(), s.vendorID).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/vendor/items", nil, "")

		var response []*resdto.VendorItemResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
		s.Equal("Catering", response[0].CatalogItemName)
	})
}

func (s *VendorHandlerTestSuite) TestConfirmItem() {
	itemID := uuid.New()
	url := "/vendor/items/" + itemID.String() + "/confirm"

	s.Run("success: returns 204", func() {
		s.mockCommands.EXPECT().ConfirmItem(gomock.Any(), itemID, s.vendorID).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 403 when assigned to a different vendor", func() {
		s.mockCommands.EXPECT().ConfirmItem(gomock.Any(), itemID, s.vendorID).
			Return(booking.ErrVendorMismatch).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "different vendor")
	})

	s.Run("error: 422 when not awaiting a response", func() {
		s.mockCommands.EXPECT().ConfirmItem(gomock.Any(), itemID, s.vendorID).
			Return(booking.ErrItemNotPending).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "")
	})

	s.Run("error: 404 for unknown item", func() {
		s.mockCommands.EXPECT().ConfirmItem(gomock.Any(), itemID, s.vendorID).
			Return(commands.ErrLineItemNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}

func (s *VendorHandlerTestSuite) TestRejectItem() {
	itemID := uuid.New()
	url := "/vendor/items/" + itemID.String() + "/reject"

	s.Run("success: passes the note through", func() {
		s.mockCommands.EXPECT().RejectItem(gomock.Any(), itemID, s.vendorID, "fully booked that day").Return(nil).Times(1)

		body := map[string]any{"note": "fully booked that day"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("success: note is optional", func() {
		s.mockCommands.EXPECT().RejectItem(gomock.Any(), itemID, s.vendorID, "").Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})
}
