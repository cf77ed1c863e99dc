package services

import (
	"staffhub/internal/apperrors"
	"staffhub/internal/authz"
	"staffhub/internal/pdf"
	"staffhub/internal/repositories"
)

type ReportService struct {
	UserRepo    repositories.UserRepository
	LeadRepo    *repositories.LeadRepository
	BookingRepo *repositories.BookingRepository
	Statements  *pdf.StatementGenerator
}

func NewReportService(userRepo repositories.UserRepository, leadRepo *repositories.LeadRepository, bookingRepo *repositories.BookingRepository, statements *pdf.StatementGenerator) *ReportService {
	return &ReportService{
		UserRepo:    userRepo,
		LeadRepo:    leadRepo,
		BookingRepo: bookingRepo,
		Statements:  statements,
	}
}

type Summary struct {
	Users            int            `json:"users"`
	LeadsByStatus    map[string]int `json:"leads_by_status"`
	Bookings         int            `json:"bookings"`
	SalesTotal       float64        `json:"sales_total"`
	UnpaidCommission float64        `json:"unpaid_commission"`
}

func (s *ReportService) GetSummary(role authz.Role) (*Summary, error) {
	if !authz.CanPerform(role, authz.ActionViewAllRecords) {
		return nil, apperrors.ErrForbidden
	}
	users, err := s.UserRepo.GetCount()
	if err != nil {
		return nil, &apperrors.DependencyError{Op: "count users", Err: err}
	}
	leads, err := s.LeadRepo.CountByStatus()
	if err != nil {
		return nil, &apperrors.DependencyError{Op: "count leads", Err: err}
	}
	bookings, sales, err := s.BookingRepo.BookingTotals()
	if err != nil {
		return nil, &apperrors.DependencyError{Op: "booking totals", Err: err}
	}
	unpaid, err := s.BookingRepo.UnpaidCommissionTotal()
	if err != nil {
		return nil, &apperrors.DependencyError{Op: "unpaid total", Err: err}
	}
	return &Summary{
		Users:            users,
		LeadsByStatus:    leads,
		Bookings:         bookings,
		SalesTotal:       sales,
		UnpaidCommission: unpaid,
	}, nil
}

// CommissionStatement renders the full commission ledger as a PDF.
func (s *ReportService) CommissionStatement(role authz.Role) ([]byte, error) {
	if !authz.CanPerform(role, authz.ActionViewAllRecords) {
		return nil, apperrors.ErrForbidden
	}
	rows, err := s.BookingRepo.StatementRows()
	if err != nil {
		return nil, &apperrors.DependencyError{Op: "statement rows", Err: err}
	}
	out, err := s.Statements.Generate(rows)
	if err != nil {
		return nil, &apperrors.DependencyError{Op: "render statement", Err: err}
	}
	return out, nil
}
