package services

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staffhub/internal/apperrors"
	"staffhub/internal/authz"
	"staffhub/internal/repositories"
)

var commissionCols = []string{"id", "booking_id", "user_id", "commission_amount", "is_paid", "created_at"}

func newBookingService(t *testing.T) (*BookingService, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewBookingService(repositories.NewBookingRepository(db)), mock
}

func TestCreateBookingCreditsCaller(t *testing.T) {
	svc, mock := newBookingService(t)
	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO bookings").
		WithArgs(7, "Acme", "2024-05-01", 500.0, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(41))
	mock.ExpectQuery("INSERT INTO commissions").
		WithArgs(41, 7, 50.0, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(91))
	mock.ExpectCommit()

	booking, commission, err := svc.Create(7, authz.RoleRep, CreateBookingInput{
		ClientName:  "Acme",
		MeetingDate: "2024-05-01",
		SaleAmount:  500,
	})
	require.NoError(t, err)
	assert.Equal(t, 41, booking.ID)
	assert.Equal(t, 7, booking.UserID)
	assert.Equal(t, 91, commission.ID)
	assert.Equal(t, 41, commission.BookingID)
	assert.Equal(t, 7, commission.UserID)
	assert.Equal(t, 50.00, commission.CommissionAmount)
	assert.False(t, commission.IsPaid)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBookingFloorApplies(t *testing.T) {
	svc, mock := newBookingService(t)
	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO bookings").
		WithArgs(7, "Acme", "2024-05-01", 100.0, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))
	mock.ExpectQuery("INSERT INTO commissions").
		WithArgs(42, 7, 30.0, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(92))
	mock.ExpectCommit()

	_, commission, err := svc.Create(7, authz.RoleRep, CreateBookingInput{
		ClientName:  "Acme",
		MeetingDate: "2024-05-01",
		SaleAmount:  100,
	})
	require.NoError(t, err)
	assert.Equal(t, 30.00, commission.CommissionAmount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBookingAdminCreditsAnotherRep(t *testing.T) {
	svc, mock := newBookingService(t)
	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO bookings").
		WithArgs(9, "Acme", "2024-05-01", 500.0, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(43))
	mock.ExpectQuery("INSERT INTO commissions").
		WithArgs(43, 9, 50.0, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(93))
	mock.ExpectCommit()

	booking, _, err := svc.Create(1, authz.RoleAdmin, CreateBookingInput{
		ClientName:     "Acme",
		MeetingDate:    "2024-05-01",
		SaleAmount:     500,
		CreditedUserID: 9,
	})
	require.NoError(t, err)
	assert.Equal(t, 9, booking.UserID)
}

func TestCreateBookingRepCannotCreditOthers(t *testing.T) {
	svc, mock := newBookingService(t)
	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO bookings").
		WithArgs(7, "Acme", "2024-05-01", 500.0, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(44))
	mock.ExpectQuery("INSERT INTO commissions").
		WithArgs(44, 7, 50.0, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(94))
	mock.ExpectCommit()

	booking, _, err := svc.Create(7, authz.RoleRep, CreateBookingInput{
		ClientName:     "Acme",
		MeetingDate:    "2024-05-01",
		SaleAmount:     500,
		CreditedUserID: 9, // ignored for non-admins
	})
	require.NoError(t, err)
	assert.Equal(t, 7, booking.UserID)
}

func TestCreateBookingRolledBackWhenCommissionFails(t *testing.T) {
	svc, mock := newBookingService(t)
	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO bookings").
		WithArgs(7, "Acme", "2024-05-01", 500.0, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(45))
	mock.ExpectQuery("INSERT INTO commissions").
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	_, _, err := svc.Create(7, authz.RoleRep, CreateBookingInput{
		ClientName:  "Acme",
		MeetingDate: "2024-05-01",
		SaleAmount:  500,
	})
	var de *apperrors.DependencyError
	require.ErrorAs(t, err, &de)
	assert.NoError(t, mock.ExpectationsWereMet(), "booking insert must be rolled back")
}

func TestCreateBookingViewerForbidden(t *testing.T) {
	svc, mock := newBookingService(t)

	_, _, err := svc.Create(3, authz.RoleViewer, CreateBookingInput{
		ClientName:  "Acme",
		MeetingDate: "2024-05-01",
		SaleAmount:  500,
	})
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBookingValidation(t *testing.T) {
	svc, _ := newBookingService(t)
	var ve *apperrors.ValidationError

	_, _, err := svc.Create(7, authz.RoleRep, CreateBookingInput{MeetingDate: "2024-05-01", SaleAmount: 500})
	assert.ErrorAs(t, err, &ve)
	_, _, err = svc.Create(7, authz.RoleRep, CreateBookingInput{ClientName: "Acme", SaleAmount: 500})
	assert.ErrorAs(t, err, &ve)
	_, _, err = svc.Create(7, authz.RoleRep, CreateBookingInput{ClientName: "Acme", MeetingDate: "2024-05-01", SaleAmount: -5})
	assert.ErrorAs(t, err, &ve)
}

func TestMarkPaidIdempotent(t *testing.T) {
	svc, mock := newBookingService(t)
	now := time.Now()
	// same UPDATE runs twice; both return the paid row
	for i := 0; i < 2; i++ {
		mock.ExpectQuery("UPDATE commissions").
			WithArgs(91).
			WillReturnRows(sqlmock.NewRows(commissionCols).AddRow(91, 41, 7, 50.0, true, now))
	}

	first, err := svc.MarkPaid(authz.RoleAdmin, 91)
	require.NoError(t, err)
	assert.True(t, first.IsPaid)

	second, err := svc.MarkPaid(authz.RoleAdmin, 91)
	require.NoError(t, err)
	assert.True(t, second.IsPaid)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkPaidAdminOnly(t *testing.T) {
	svc, _ := newBookingService(t)
	for _, role := range []authz.Role{authz.RoleTeamLead, authz.RoleRep, authz.RolePartTime, authz.RoleViewer} {
		_, err := svc.MarkPaid(role, 91)
		assert.ErrorIs(t, err, apperrors.ErrForbidden, "role=%s", role)
	}
}

func TestMarkPaidMissingCommission(t *testing.T) {
	svc, mock := newBookingService(t)
	mock.ExpectQuery("UPDATE commissions").
		WithArgs(404).
		WillReturnRows(sqlmock.NewRows(commissionCols))

	_, err := svc.MarkPaid(authz.RoleAdmin, 404)
	var nfe *apperrors.NotFoundError
	assert.ErrorAs(t, err, &nfe)
}

func TestListCommissionsScopedForRep(t *testing.T) {
	svc, mock := newBookingService(t)
	mock.ExpectQuery("SELECT (.+) FROM commissions WHERE user_id = \\$1").
		WithArgs(7, 100, 0).
		WillReturnRows(sqlmock.NewRows(commissionCols).AddRow(91, 41, 7, 50.0, false, time.Now()))

	commissions, err := svc.ListCommissions(7, authz.RoleRep, 100, 0)
	require.NoError(t, err)
	assert.Len(t, commissions, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdjustCommissionValidatesAmount(t *testing.T) {
	svc, _ := newBookingService(t)
	bad := -10.0
	_, err := svc.AdjustCommission(authz.RoleAdmin, 91, &bad, nil)
	var ve *apperrors.ValidationError
	assert.ErrorAs(t, err, &ve)
}
