package services

import (
	"strings"
	"time"

	"staffhub/internal/apperrors"
	"staffhub/internal/authz"
	"staffhub/internal/models"
	"staffhub/internal/repositories"
)

type BookingService struct {
	Repo *repositories.BookingRepository
}

func NewBookingService(repo *repositories.BookingRepository) *BookingService {
	return &BookingService{Repo: repo}
}

type CreateBookingInput struct {
	ClientName     string
	MeetingDate    string
	SaleAmount     float64
	CreditedUserID int // optional; only honoured for admins
}

// Create records a sale: one booking row plus exactly one commission row,
// written as a unit. The commission amount is fixed here and never changes.
func (s *BookingService) Create(userID int, role authz.Role, in CreateBookingInput) (*models.Booking, *models.Commission, error) {
	if !authz.CanPerform(role, authz.ActionCreateBooking) {
		return nil, nil, apperrors.ErrForbidden
	}
	if strings.TrimSpace(in.ClientName) == "" {
		return nil, nil, &apperrors.ValidationError{Field: "client_name", Message: "is required"}
	}
	if strings.TrimSpace(in.MeetingDate) == "" {
		return nil, nil, &apperrors.ValidationError{Field: "meeting_date", Message: "is required"}
	}
	commissionAmount, err := ComputeCommission(in.SaleAmount)
	if err != nil {
		return nil, nil, err
	}

	// admin may credit another rep; everyone else credits themselves
	creditedID := userID
	if role == authz.RoleAdmin && in.CreditedUserID > 0 {
		creditedID = in.CreditedUserID
	}

	now := time.Now()
	booking := &models.Booking{
		UserID:      creditedID,
		ClientName:  in.ClientName,
		MeetingDate: in.MeetingDate,
		SaleAmount:  in.SaleAmount,
		CreatedAt:   now,
	}
	commission := &models.Commission{
		UserID:           creditedID,
		CommissionAmount: commissionAmount,
		CreatedAt:        now,
	}

	if err := s.Repo.CreateWithCommission(booking, commission); err != nil {
		return nil, nil, &apperrors.DependencyError{Op: "create booking", Err: err}
	}
	return booking, commission, nil
}

// MarkPaid flips is_paid once; calling it again on a paid commission
// succeeds without change.
func (s *BookingService) MarkPaid(role authz.Role, commissionID int) (*models.Commission, error) {
	if !authz.CanPerform(role, authz.ActionMarkCommissionPaid) {
		return nil, apperrors.ErrForbidden
	}
	cm, err := s.Repo.MarkCommissionPaid(commissionID)
	if err != nil {
		return nil, &apperrors.DependencyError{Op: "mark commission paid", Err: err}
	}
	if cm == nil {
		return nil, &apperrors.NotFoundError{Resource: "commission", ID: commissionID}
	}
	return cm, nil
}

// AdjustCommission is the manual admin override (amount and/or paid flag).
func (s *BookingService) AdjustCommission(role authz.Role, commissionID int, amount *float64, isPaid *bool) (*models.Commission, error) {
	if !authz.CanPerform(role, authz.ActionManageUsers) {
		return nil, apperrors.ErrForbidden
	}
	if amount != nil && *amount < 0 {
		return nil, &apperrors.ValidationError{Field: "commission_amount", Message: "must be non-negative"}
	}
	cm, err := s.Repo.UpdateCommission(commissionID, amount, isPaid)
	if err != nil {
		return nil, &apperrors.DependencyError{Op: "update commission", Err: err}
	}
	if cm == nil {
		return nil, &apperrors.NotFoundError{Resource: "commission", ID: commissionID}
	}
	return cm, nil
}

func (s *BookingService) ListBookings(userID int, role authz.Role, limit, offset int) ([]*models.Booking, error) {
	if authz.CanPerform(role, authz.ActionViewAllRecords) {
		return s.Repo.ListBookings(limit, offset)
	}
	return s.Repo.ListBookingsByUser(userID, limit, offset)
}

func (s *BookingService) ListCommissions(userID int, role authz.Role, limit, offset int) ([]*models.Commission, error) {
	if authz.CanPerform(role, authz.ActionViewAllRecords) {
		return s.Repo.ListCommissions(limit, offset)
	}
	return s.Repo.ListCommissionsByUser(userID, limit, offset)
}
