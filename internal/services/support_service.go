package services

import (
	"strings"
	"time"

	"staffhub/internal/apperrors"
	"staffhub/internal/authz"
	"staffhub/internal/models"
	"staffhub/internal/repositories"
)

type SupportService struct {
	Repo *repositories.SupportRepository
}

func NewSupportService(repo *repositories.SupportRepository) *SupportService {
	return &SupportService{Repo: repo}
}

func (s *SupportService) PostAnnouncement(userID int, role authz.Role, body string) (*models.Announcement, error) {
	if !authz.CanPerform(role, authz.ActionPostAnnouncement) {
		return nil, apperrors.ErrForbidden
	}
	if strings.TrimSpace(body) == "" {
		return nil, &apperrors.ValidationError{Field: "body", Message: "is required"}
	}
	a := &models.Announcement{UserID: userID, Body: body, CreatedAt: time.Now()}
	if err := s.Repo.CreateAnnouncement(a); err != nil {
		return nil, &apperrors.DependencyError{Op: "create announcement", Err: err}
	}
	return a, nil
}

func (s *SupportService) LatestAnnouncement() (*models.Announcement, error) {
	return s.Repo.LatestAnnouncement()
}

func (s *SupportService) Contact(userID int, subject, body string) (*models.SupportRequest, error) {
	if strings.TrimSpace(subject) == "" {
		return nil, &apperrors.ValidationError{Field: "subject", Message: "is required"}
	}
	if strings.TrimSpace(body) == "" {
		return nil, &apperrors.ValidationError{Field: "body", Message: "is required"}
	}
	req := &models.SupportRequest{UserID: userID, Subject: subject, Body: body, CreatedAt: time.Now()}
	if err := s.Repo.CreateRequest(req); err != nil {
		return nil, &apperrors.DependencyError{Op: "create support request", Err: err}
	}
	return req, nil
}

func (s *SupportService) ListRequests(role authz.Role) ([]*models.SupportRequest, error) {
	if !authz.CanPerform(role, authz.ActionViewAllRecords) {
		return nil, apperrors.ErrForbidden
	}
	return s.Repo.ListRequests()
}
