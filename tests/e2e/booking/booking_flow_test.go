//go:build e2e

package booking_test

import (
	"fmt"
	"net/http"
	"testing"

	"venuebook/internal/domain/user"
	reqdto "venuebook/internal/handler/dto/request"
	"venuebook/internal/handler/dto/response"
	"venuebook/tests/common/authtest"
	"venuebook/tests/common/dbtest"
	"venuebook/tests/common/httptest"
	"venuebook/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	requestsURL          = "/api/requests"
	approveURL           = "/api/requests/%s/approve"
	rejectURL            = "/api/requests/%s/reject"
	spaceRequestsURL     = "/api/spaces/%s/requests"
	spaceReservationsURL = "/api/spaces/%s/reservations"
)

type BookingSuite struct {
	e2e.SharedSuite
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

func (s *BookingSuite) token(t *testing.T, userID uuid.UUID) string {
	return authtest.NewJWTHelper(s.Config.JWT).GenerateToken(t, userID, user.RoleMember)
}

func (s *BookingSuite) submitRequest(t *testing.T, token string, spaceID uuid.UUID, start, end string) string {
	t.Helper()

	body := reqdto.SubmitRequestRequest{
		SpaceID:   spaceID,
		StartDate: start,
		EndDate:   end,
		Reason:    "Team offsite",
	}
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, requestsURL, body, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created map[string]string
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
	require.NotEmpty(t, created["requestId"])
	return created["requestId"]
}

func (s *BookingSuite) TestBookingFlow() {
	s.Run("Normal case: approval creates a reservation and sweeps overlapping requests", func() {
		t := s.T()

		ownerID := dbtest.CreateTestUser(t, s.DB, "owner@example.com", "member")
		aliceID := dbtest.CreateTestUser(t, s.DB, "alice@example.com", "member")
		bobID := dbtest.CreateTestUser(t, s.DB, "bob@example.com", "member")
		spaceID := dbtest.CreateTestSpace(t, s.DB, ownerID, "Riverside Hall", 1000, nil)

		ownerToken := s.token(t, ownerID)
		aliceToken := s.token(t, aliceID)
		bobToken := s.token(t, bobID)

		aliceReq := s.submitRequest(t, aliceToken, spaceID, "2025-08-10", "2025-08-12")
		s.submitRequest(t, bobToken, spaceID, "2025-08-11", "2025-08-13")

		// Owner sees both pending requests
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(spaceRequestsURL, spaceID), nil, ownerToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var pending []response.RequestResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &pending))
		require.Len(t, pending, 2)

		// Approval converts the request and removes every overlapping one
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(approveURL, aliceReq), nil, ownerToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var approved response.ApproveResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &approved))
		require.Equal(t, int64(3000), approved.TotalAmount) // 3 days * 1000
		require.Equal(t, int64(2), approved.RemovedRequests)

		// The space calendar is public
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(spaceReservationsURL, spaceID), nil, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var reservations []response.ReservationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &reservations))
		require.Len(t, reservations, 1)

		expected := response.ReservationResponse{
			ID:            approved.ReservationID,
			SpaceID:       spaceID,
			UserID:        aliceID,
			StartDate:     "2025-08-10",
			EndDate:       "2025-08-12",
			PaymentStatus: "pending",
			TotalAmount:   3000,
		}
		opts := []cmp.Option{
			cmpopts.IgnoreFields(response.ReservationResponse{}, "CreatedAt", "UpdatedAt"),
		}
		if diff := cmp.Diff(expected, reservations[0], opts...); diff != "" {
			t.Errorf("Reservation mismatch (-want +got):\n%s", diff)
		}

		// All overlapping requests are gone
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(spaceRequestsURL, spaceID), nil, ownerToken)
		require.Equal(t, http.StatusOK, w.Code)
		var remaining []response.RequestResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &remaining))
		require.Empty(t, remaining)

		// Requester sees the reservation in their own list
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/reservations", nil, aliceToken)
		require.Equal(t, http.StatusOK, w.Code)
		var own []response.ReservationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &own))
		require.Len(t, own, 1)
		require.Equal(t, approved.ReservationID, own[0].ID)
	})

	s.Run("Error case: overlapping approval is rejected, adjacent one succeeds", func() {
		t := s.T()

		ownerID := dbtest.CreateTestUser(t, s.DB, "owner@example.com", "member")
		aliceID := dbtest.CreateTestUser(t, s.DB, "alice@example.com", "member")
		spaceID := dbtest.CreateTestSpace(t, s.DB, ownerID, "Riverside Hall", 1000, nil)

		ownerToken := s.token(t, ownerID)
		aliceToken := s.token(t, aliceID)

		first := s.submitRequest(t, aliceToken, spaceID, "2025-08-10", "2025-08-12")
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(approveURL, first), nil, ownerToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		// Shares the checkout day with the reservation
		overlapping := s.submitRequest(t, aliceToken, spaceID, "2025-08-12", "2025-08-14")
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(approveURL, overlapping), nil, ownerToken)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())

		// The day right after the reservation ends is free
		adjacent := s.submitRequest(t, aliceToken, spaceID, "2025-08-13", "2025-08-15")
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(approveURL, adjacent), nil, ownerToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})

	s.Run("Error case: only the space owner may approve", func() {
		t := s.T()

		ownerID := dbtest.CreateTestUser(t, s.DB, "owner@example.com", "member")
		aliceID := dbtest.CreateTestUser(t, s.DB, "alice@example.com", "member")
		malloryID := dbtest.CreateTestUser(t, s.DB, "mallory@example.com", "member")
		spaceID := dbtest.CreateTestSpace(t, s.DB, ownerID, "Riverside Hall", 1000, nil)

		requestID := s.submitRequest(t, s.token(t, aliceID), spaceID, "2025-08-10", "2025-08-12")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(approveURL, requestID), nil, s.token(t, malloryID))
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())

		// Admin may act on behalf of the owner
		adminID := dbtest.CreateTestUser(t, s.DB, "admin@example.com", "admin")
		adminToken := authtest.NewJWTHelper(s.Config.JWT).GenerateToken(t, adminID, user.RoleAdmin)
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(approveURL, requestID), nil, adminToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})

	s.Run("Normal case: rejection and withdrawal both delete the request", func() {
		t := s.T()

		ownerID := dbtest.CreateTestUser(t, s.DB, "owner@example.com", "member")
		aliceID := dbtest.CreateTestUser(t, s.DB, "alice@example.com", "member")
		malloryID := dbtest.CreateTestUser(t, s.DB, "mallory@example.com", "member")
		spaceID := dbtest.CreateTestSpace(t, s.DB, ownerID, "Riverside Hall", 1000, nil)

		ownerToken := s.token(t, ownerID)
		aliceToken := s.token(t, aliceID)

		rejected := s.submitRequest(t, aliceToken, spaceID, "2025-08-10", "2025-08-12")
		withdrawn := s.submitRequest(t, aliceToken, spaceID, "2025-09-01", "2025-09-03")

		// A stranger cannot reject
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(rejectURL, rejected), nil, s.token(t, malloryID))
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(rejectURL, rejected), nil, ownerToken)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		// The requester can withdraw their own request
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(rejectURL, withdrawn), nil, aliceToken)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, requestsURL, nil, aliceToken)
		require.Equal(t, http.StatusOK, w.Code)
		var remaining []response.RequestResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &remaining))
		require.Empty(t, remaining)
	})

	s.Run("Error case: authentication is enforced", func() {
		t := s.T()

		ownerID := dbtest.CreateTestUser(t, s.DB, "owner@example.com", "member")
		spaceID := dbtest.CreateTestSpace(t, s.DB, ownerID, "Riverside Hall", 1000, nil)

		body := reqdto.SubmitRequestRequest{
			SpaceID:   spaceID,
			StartDate: "2025-08-10",
			EndDate:   "2025-08-12",
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, requestsURL, body, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)

		expired := authtest.NewJWTHelper(s.Config.JWT).CreateExpiredToken(t, ownerID, user.RoleMember)
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, requestsURL, body, expired)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
