package services

import (
	"strings"
	"time"

	"staffhub/internal/apperrors"
	"staffhub/internal/authz"
	"staffhub/internal/models"
	"staffhub/internal/repositories"
)

type ResourceService struct {
	Repo *repositories.ResourceRepository
}

func NewResourceService(repo *repositories.ResourceRepository) *ResourceService {
	return &ResourceService{Repo: repo}
}

func (s *ResourceService) Add(role authz.Role, category, title, url string, description *string) (*models.Resource, error) {
	if !authz.CanPerform(role, authz.ActionManageUsers) {
		return nil, apperrors.ErrForbidden
	}
	if strings.TrimSpace(category) == "" {
		return nil, &apperrors.ValidationError{Field: "category", Message: "is required"}
	}
	if strings.TrimSpace(title) == "" {
		return nil, &apperrors.ValidationError{Field: "title", Message: "is required"}
	}
	if strings.TrimSpace(url) == "" {
		return nil, &apperrors.ValidationError{Field: "url", Message: "is required"}
	}
	res := &models.Resource{Category: category, Title: title, URL: url, Description: description, CreatedAt: time.Now()}
	if err := s.Repo.Create(res); err != nil {
		return nil, &apperrors.DependencyError{Op: "create resource", Err: err}
	}
	return res, nil
}

func (s *ResourceService) List(category string) ([]*models.Resource, error) {
	return s.Repo.List(category)
}
