//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"venuebook/internal/domain/payment"
	"venuebook/internal/infra"
	"venuebook/internal/infra/repository"
	"venuebook/tests/common/builder"
	repositorymock "venuebook/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// CreateAttempt Tests
// =============================================================================

func TestPaymentRepository_CreateAttempt(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockPaymentWriteQueries, *mockDBTX, uuid.UUID)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: attempt persisted",
			setupMock: func(mock *repositorymock.MockPaymentWriteQueries, tx *mockDBTX, id uuid.UUID) {
				mock.EXPECT().CreatePaymentAttempt(ctx, tx, gomock.Any()).Return(id, nil)
			},
			expectedError: false,
		},
		{
			name: "error: duplicate order id",
			setupMock: func(mock *repositorymock.MockPaymentWriteQueries, tx *mockDBTX, _ uuid.UUID) {
				mock.EXPECT().CreatePaymentAttempt(ctx, tx, gomock.Any()).
					Return(uuid.Nil, &pgconn.PgError{Code: "23505"})
			},
			expectedError: true,
			expectKind:    infra.KindDuplicateKey,
		},
		{
			name: "error: database failure",
			setupMock: func(mock *repositorymock.MockPaymentWriteQueries, tx *mockDBTX, _ uuid.UUID) {
				mock.EXPECT().CreatePaymentAttempt(ctx, tx, gomock.Any()).
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

			mockQueries := repositorymock.NewMockPaymentWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewPaymentRepository(mockQueries, mockDB)

			attempt, err := builder.NewAttemptBuilder().BuildDomain()
			require.NoError(t, err)

			expectedID := uuid.New()
			tc.setupMock(mockQueries, mockDB, expectedID)

			actualID, actualError := repo.CreateAttempt(ctx, mockDB, attempt)

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

func TestPaymentRepository_MarkPaid(t *testing.T) {
	ctx := context.Background()
	attemptID := uuid.New()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockPaymentWriteQueries, *mockDBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: open attempt marked paid",
			setupMock: func(mock *repositorymock.MockPaymentWriteQueries, tx *mockDBTX) {
				mock.EXPECT().MarkPaymentAttemptPaid(ctx, tx, gomock.Any()).Return(int64(1), nil)
			},
			expectedError: false,
		},
		{
			name: "error: attempt no longer open",
			setupMock: func(mock *repositorymock.MockPaymentWriteQueries, tx *mockDBTX) {
				mock.EXPECT().MarkPaymentAttemptPaid(ctx, tx, gomock.Any()).Return(int64(0), nil)
			},
			expectedError: true,
			expectKind:    infra.KindConflict,
		},
		{
			name: "error: database failure",
			setupMock: func(mock *repositorymock.MockPaymentWriteQueries, tx *mockDBTX) {
				mock.EXPECT().MarkPaymentAttemptPaid(ctx, tx, gomock.Any()).
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

			mockQueries := repositorymock.NewMockPaymentWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewPaymentRepository(mockQueries, mockDB)

			tc.setupMock(mockQueries, mockDB)

			actualError := repo.MarkPaid(ctx, mockDB, attemptID, "pay_123")

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
			} else {
				assert.NoError(t, actualError)
			}
		})
	}
}

// =============================================================================
// MarkSignatureMismatch Tests
// =============================================================================

func TestPaymentRepository_MarkSignatureMismatch(t *testing.T) {
	ctx := context.Background()
	attemptID := uuid.New()

	t.Run("success: open attempt closed as mismatched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockPaymentWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewPaymentRepository(mockQueries, mockDB)

		mockQueries.EXPECT().MarkPaymentAttemptSignatureMismatch(ctx, mockDB, attemptID).Return(int64(1), nil)

		assert.NoError(t, repo.MarkSignatureMismatch(ctx, mockDB, attemptID))
	})

	t.Run("error: attempt no longer open", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockPaymentWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewPaymentRepository(mockQueries, mockDB)

		mockQueries.EXPECT().MarkPaymentAttemptSignatureMismatch(ctx, mockDB, attemptID).Return(int64(0), nil)

		err := repo.MarkSignatureMismatch(ctx, mockDB, attemptID)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindConflict))
	})
}

// =============================================================================
// SetTransfer Tests
// =============================================================================

func TestPaymentRepository_SetTransfer(t *testing.T) {
	ctx := context.Background()
	attemptID := uuid.New()
	transferID := "trf_001"

	t.Run("success: transfer outcome recorded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockPaymentWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewPaymentRepository(mockQueries, mockDB)

		mockQueries.EXPECT().SetPaymentAttemptTransfer(ctx, mockDB, gomock.Any()).Return(int64(1), nil)

		assert.NoError(t, repo.SetTransfer(ctx, mockDB, attemptID, payment.TransferStatusTransferred, &transferID))
	})

	t.Run("error: unknown attempt", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockPaymentWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewPaymentRepository(mockQueries, mockDB)

		mockQueries.EXPECT().SetPaymentAttemptTransfer(ctx, mockDB, gomock.Any()).Return(int64(0), nil)

		err := repo.SetTransfer(ctx, mockDB, attemptID, payment.TransferStatusTransferred, &transferID)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

// mockDBTX is a mock implementation of sqlc.DBTX interface
type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	panic("mockDBTX.Exec was called unexpectedly. Use sqlc mock instead.")
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	panic("mockDBTX.Query was called unexpectedly. Use sqlc mock instead.")
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use sqlc mock instead.")
}
