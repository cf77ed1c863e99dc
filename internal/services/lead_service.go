package services

import (
	"fmt"
	"strings"
	"time"

	"staffhub/internal/apperrors"
	"staffhub/internal/authz"
	"staffhub/internal/models"
	"staffhub/internal/repositories"
)

type LeadService struct {
	Repo *repositories.LeadRepository
}

func NewLeadService(repo *repositories.LeadRepository) *LeadService {
	return &LeadService{Repo: repo}
}

// Request creates a placeholder lead in "Requested" state. Admins allocate
// real leads later through the assign flow.
func (s *LeadService) Request(userID int, role authz.Role, industry, region string, quantity int) (*models.Lead, error) {
	if !authz.CanPerform(role, authz.ActionRequestLead) {
		return nil, apperrors.ErrForbidden
	}
	if strings.TrimSpace(industry) == "" {
		return nil, &apperrors.ValidationError{Field: "industry", Message: "is required"}
	}
	if strings.TrimSpace(region) == "" {
		return nil, &apperrors.ValidationError{Field: "region", Message: "is required"}
	}
	if quantity < 1 {
		return nil, &apperrors.ValidationError{Field: "quantity", Message: "must be at least 1"}
	}

	lead := &models.Lead{
		Name:        "Lead request",
		Industry:    industry,
		Region:      region,
		Quantity:    quantity,
		Status:      models.LeadStatusRequested,
		RequestedBy: &userID,
		CreatedAt:   time.Now(),
	}
	if err := s.Repo.Create(lead); err != nil {
		return nil, &apperrors.DependencyError{Op: "create lead", Err: err}
	}
	return lead, nil
}

// Assign hands a batch of leads to a rep. Every lead must still be in an
// assignable status; one bad lead fails the whole batch before any write.
func (s *LeadService) Assign(role authz.Role, leadIDs []int, assigneeID int) error {
	if !authz.CanPerform(role, authz.ActionAssignLead) {
		return apperrors.ErrForbidden
	}
	if len(leadIDs) == 0 {
		return &apperrors.ValidationError{Field: "lead_ids", Message: "is required"}
	}
	if assigneeID <= 0 {
		return &apperrors.ValidationError{Field: "user_id", Message: "is required"}
	}

	for _, id := range leadIDs {
		lead, err := s.Repo.GetByID(id)
		if err != nil {
			return &apperrors.DependencyError{Op: "get lead", Err: err}
		}
		if lead == nil {
			return &apperrors.NotFoundError{Resource: "lead", ID: id}
		}
		if !canAssign(lead.Status) {
			return &apperrors.ConflictError{Message: fmt.Sprintf("lead %d is not assignable from status %q", id, lead.Status)}
		}
	}

	if err := s.Repo.AssignMany(leadIDs, assigneeID); err != nil {
		return &apperrors.DependencyError{Op: "assign leads", Err: err}
	}
	return nil
}

// Update changes status/notes/tags. Only the assigned rep or an admin may
// touch a lead; the policy check runs first so viewers are rejected before
// any record lookup.
func (s *LeadService) Update(userID int, role authz.Role, id int, status, notes, tags *string) (*models.Lead, error) {
	if !authz.CanPerform(role, authz.ActionUpdateLead) {
		return nil, apperrors.ErrForbidden
	}

	lead, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, &apperrors.DependencyError{Op: "get lead", Err: err}
	}
	if lead == nil {
		return nil, &apperrors.NotFoundError{Resource: "lead", ID: id}
	}
	if role != authz.RoleAdmin && (lead.AssignedTo == nil || *lead.AssignedTo != userID) {
		return nil, apperrors.ErrForbidden
	}

	if status != nil && !canTransition(lead.Status, *status) {
		return nil, &apperrors.ConflictError{Message: fmt.Sprintf("cannot move lead from %q to %q", lead.Status, *status)}
	}

	if err := s.Repo.UpdateFields(id, status, notes, tags); err != nil {
		return nil, &apperrors.DependencyError{Op: "update lead", Err: err}
	}
	updated, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, &apperrors.DependencyError{Op: "get lead", Err: err}
	}
	return updated, nil
}

func (s *LeadService) List(userID int, role authz.Role, limit, offset int) ([]*models.Lead, error) {
	if authz.CanPerform(role, authz.ActionViewAllRecords) {
		return s.Repo.ListAll(limit, offset)
	}
	return s.Repo.ListVisibleTo(userID, limit, offset)
}

func (s *LeadService) Get(userID int, role authz.Role, id int) (*models.Lead, error) {
	lead, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, &apperrors.DependencyError{Op: "get lead", Err: err}
	}
	if lead == nil {
		return nil, &apperrors.NotFoundError{Resource: "lead", ID: id}
	}
	if authz.CanPerform(role, authz.ActionViewAllRecords) {
		return lead, nil
	}
	if (lead.AssignedTo != nil && *lead.AssignedTo == userID) ||
		(lead.RequestedBy != nil && *lead.RequestedBy == userID) {
		return lead, nil
	}
	return nil, apperrors.ErrForbidden
}
