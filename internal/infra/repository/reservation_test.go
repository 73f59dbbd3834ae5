//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"venuebook/internal/domain/booking"
	"venuebook/internal/infra"
	"venuebook/internal/infra/repository"
	repositorymock "venuebook/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func buildReservation(t *testing.T) *booking.Reservation {
	t.Helper()

	stay, err := booking.NewDateRange(
		time.Date(2025, 8, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 8, 12, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)

	res, err := booking.NewReservation(uuid.New(), uuid.New(), stay, 1000)
	require.NoError(t, err)
	return res
}

// =============================================================================
// Create Tests
// =============================================================================

func TestReservationRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockReservationWriteQueries, *mockDBTX, uuid.UUID)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: reservation persisted",
			setupMock: func(mock *repositorymock.MockReservationWriteQueries, tx *mockDBTX, id uuid.UUID) {
				mock.EXPECT().CreateReservation(ctx, tx, gomock.Any()).Return(id, nil)
			},
			expectedError: false,
		},
		{
			name: "error: overlapping stay trips the exclusion constraint",
			setupMock: func(mock *repositorymock.MockReservationWriteQueries, tx *mockDBTX, _ uuid.UUID) {
				mock.EXPECT().CreateReservation(ctx, tx, gomock.Any()).
					Return(uuid.Nil, &pgconn.PgError{Code: "23P01"})
			},
			expectedError: true,
			expectKind:    infra.KindConflict,
		},
		{
			name: "error: unknown space",
			setupMock: func(mock *repositorymock.MockReservationWriteQueries, tx *mockDBTX, _ uuid.UUID) {
				mock.EXPECT().CreateReservation(ctx, tx, gomock.Any()).
					Return(uuid.Nil, &pgconn.PgError{Code: "23503"})
			},
			expectedError: true,
			expectKind:    infra.KindForeignKeyViolated,
		},
		{
			name: "error: database failure",
			setupMock: func(mock *repositorymock.MockReservationWriteQueries, tx *mockDBTX, _ uuid.UUID) {
				mock.EXPECT().CreateReservation(ctx, tx, gomock.Any()).
					Return(uuid.Nil, errors.New("connection refused"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewReservationRepository(mockQueries, mockDB)

			expectedID := uuid.New()
			tc.setupMock(mockQueries, mockDB, expectedID)

			actualID, actualError := repo.Create(ctx, mockDB, buildReservation(t))

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
			} else {
				assert.NoError(t, actualError)
				assert.Equal(t, expectedID, actualID)
			}
		})
	}
}

// =============================================================================
// MarkPaid Tests
// =============================================================================

func TestReservationRepository_MarkPaid(t *testing.T) {
	ctx := context.Background()
	reservationID := uuid.New()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockReservationWriteQueries, *mockDBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: reservation marked paid",
			setupMock: func(mock *repositorymock.MockReservationWriteQueries, tx *mockDBTX) {
				mock.EXPECT().MarkReservationPaid(ctx, tx, reservationID).Return(int64(1), nil)
			},
			expectedError: false,
		},
		{
			name: "error: unknown reservation",
			setupMock: func(mock *repositorymock.MockReservationWriteQueries, tx *mockDBTX) {
				mock.EXPECT().MarkReservationPaid(ctx, tx, reservationID).Return(int64(0), nil)
			},
			expectedError: true,
			expectKind:    infra.KindNotFound,
		},
		{
			name: "error: database failure",
			setupMock: func(mock *repositorymock.MockReservationWriteQueries, tx *mockDBTX) {
				mock.EXPECT().MarkReservationPaid(ctx, tx, reservationID).
					Return(int64(0), errors.New("connection refused"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewReservationRepository(mockQueries, mockDB)

			tc.setupMock(mockQueries, mockDB)

			actualError := repo.MarkPaid(ctx, mockDB, reservationID)

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
			} else {
				assert.NoError(t, actualError)
			}
		})
	}
}
