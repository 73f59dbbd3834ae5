//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"venuebook/internal/domain/payment"
	"venuebook/internal/domain/user"
	"venuebook/internal/handler/api"
	reqdto "venuebook/internal/handler/dto/request"
	resdto "venuebook/internal/handler/dto/response"
	"venuebook/internal/usecase/commands"
	"venuebook/internal/usecase/queries"
	"venuebook/tests/common/builder"
	"venuebook/tests/common/httptest"
	"venuebook/tests/common/testutil"
	commandsmock "venuebook/tests/mock/commands"
	queriesmock "venuebook/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PaymentHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockSettlementCommands
	mockQueries  *queriesmock.MockPaymentQueries
	handler      *api.PaymentHandler
	userID       uuid.UUID
}

func (s *PaymentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockSettlementCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockPaymentQueries(s.mockCtrl)
	s.handler = api.NewPaymentHandler(s.mockCommands, s.mockQueries)
	s.userID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", s.userID)
		c.Set("user_role", user.RoleMember)
		c.Next()
	}

	// The settlement endpoints sit at the engine root, mirroring the
	// production route table.
	s.router.POST("/payments/create-order", authMiddleware, s.handler.CreateOrder)
	s.router.POST("/payments/verify", authMiddleware, s.handler.VerifyPayment)
	s.router.GET("/api/reservations/:id/payments", authMiddleware, s.handler.ListReservationAttempts)
}

func (s *PaymentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPaymentHandlerSuite(t *testing.T) {
	suite.Run(t, new(PaymentHandlerTestSuite))
}

// ================================================================================
// TestCreateOrder
// ================================================================================

func (s *PaymentHandlerTestSuite) TestCreateOrder() {
	url := "/payments/create-order"
	bookingID := uuid.New()

	reqBody := reqdto.CreateOrderRequest{
		BookingID: bookingID,
		OwnerID:   uuid.New(),
		Amount:    3000,
	}
	expectedResult := &commands.CreateOrderResult{
		OrderID:     "order_abc123",
		AmountMinor: 300000,
		Currency:    "INR",
		KeyID:       "rzp_test_key",
	}

	s.Run("success: returns 200 OK with checkout fields", func() {
		s.mockCommands.EXPECT().CreateOrder(gomock.Any(), bookingID, s.userID, string(user.RoleMember)).
			Return(expectedResult, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("rzp_test_key", response.KeyID)
		s.Equal("order_abc123", response.OrderID)
		s.Equal(int64(300000), response.Amount)
		s.False(response.Reused)
	})

	s.Run("success: reused order is flagged", func() {
		reused := *expectedResult
		reused.Reused = true
		s.mockCommands.EXPECT().CreateOrder(gomock.Any(), bookingID, s.userID, string(user.RoleMember)).
			Return(&reused, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Reused)
	})

	s.Run("error: 400 Bad Request on missing fields", func() {
		testCases := []testCaseBooking{
			{name: "missing field: bookingId (required)", mutate: testutil.Field("bookingId", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: ownerId (required)", mutate: testutil.Field("ownerId", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: amount (required)", mutate: testutil.Field("amount", nil), expectCode: http.StatusBadRequest},
			{name: "zero amount", mutate: testutil.Field("amount", 0), expectCode: http.StatusBadRequest},
			{name: "negative amount", mutate: testutil.Field("amount", -100), expectCode: http.StatusBadRequest},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "reservation not found",
				commandsError:  commands.ErrReservationNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Reservation not found",
			},
			{
				name:           "reservation not owned",
				commandsError:  commands.ErrReservationNotOwned,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "Access denied",
			},
			{
				name:           "already paid",
				commandsError:  commands.ErrReservationPaid,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "already paid",
			},
			{
				name:           "gateway unavailable",
				commandsError:  commands.ErrGatewayUnavailable,
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Payment gateway failure",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateOrder(gomock.Any(), bookingID, s.userID, string(user.RoleMember)).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestVerifyPayment
// ================================================================================

func (s *PaymentHandlerTestSuite) TestVerifyPayment() {
	url := "/payments/verify"
	bookingID := uuid.New()

	reqBody := reqdto.VerifyPaymentRequest{
		BookingID: bookingID,
		OrderID:   "order_abc123",
		PaymentID: "pay_xyz789",
		Signature: "deadbeef",
	}
	expectedInput := commands.VerifyPaymentInput{
		OrderID:   "order_abc123",
		PaymentID: "pay_xyz789",
		Signature: "deadbeef",
	}

	s.Run("success: returns success flag with transfer status", func() {
		transferred := payment.TransferStatusTransferred
		s.mockCommands.EXPECT().VerifyAndSettle(gomock.Any(), expectedInput).
			Return(&commands.SettleResult{
				ReservationID:  bookingID,
				Settled:        true,
				TransferStatus: &transferred,
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.VerifyResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Success)
		s.Equal(bookingID, response.BookingID)
		s.Require().NotNil(response.TransferStatus)
		s.Equal("transferred", *response.TransferStatus)
	})

	s.Run("success: replayed confirmation still reads success", func() {
		s.mockCommands.EXPECT().VerifyAndSettle(gomock.Any(), expectedInput).
			Return(&commands.SettleResult{
				ReservationID: bookingID,
				Settled:       true,
				Replayed:      true,
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.VerifyResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Success)
	})

	s.Run("error: 400 with success flag on missing fields", func() {
		testCases := []testCaseBooking{
			{name: "missing field: bookingId (required)", mutate: testutil.Field("bookingId", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: order_id (required)", mutate: testutil.Field("order_id", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: payment_id (required)", mutate: testutil.Field("payment_id", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: signature (required)", mutate: testutil.Field("signature", nil), expectCode: http.StatusBadRequest},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertVerifyFailure(s.T(), rec, tc.expectCode)
			})
		}
	})

	s.Run("error: 400 with success flag on signature mismatch", func() {
		s.mockCommands.EXPECT().VerifyAndSettle(gomock.Any(), expectedInput).
			Return(nil, commands.ErrSignatureMismatch).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertVerifyFailure(s.T(), rec, http.StatusBadRequest)
	})

	s.Run("error: 404 with success flag on unknown order", func() {
		s.mockCommands.EXPECT().VerifyAndSettle(gomock.Any(), expectedInput).
			Return(nil, commands.ErrOrderNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertVerifyFailure(s.T(), rec, http.StatusNotFound)
	})

	s.Run("error: 500 with success flag on unexpected failure", func() {
		s.mockCommands.EXPECT().VerifyAndSettle(gomock.Any(), expectedInput).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertVerifyFailure(s.T(), rec, http.StatusInternalServerError)
	})
}

// ================================================================================
// TestListReservationAttempts
// ================================================================================

func (s *PaymentHandlerTestSuite) TestListReservationAttempts() {
	reservationID := uuid.New()
	url := "/api/reservations/" + reservationID.String() + "/payments"

	items := []*queries.AttemptView{
		builder.NewAttemptBuilder().
			With(func(b *builder.AttemptBuilder) { b.ReservationID = reservationID }).
			BuildView(),
		builder.NewAttemptBuilder().
			Paid("pay_xyz789").
			With(func(b *builder.AttemptBuilder) { b.ReservationID = reservationID }).
			BuildView(),
	}

	s.Run("success: returns the attempt ledger", func() {
		s.mockQueries.EXPECT().ListByReservation(gomock.Any(), reservationID).
			Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []resdto.AttemptResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
		s.Equal("created", response[0].Status)
		s.Equal("paid", response[1].Status)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/reservations/invalid-uuid/payments", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid reservation ID")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 500 on query failure", func() {
		s.mockQueries.EXPECT().ListByReservation(gomock.Any(), reservationID).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
