package services

import (
	"log"
	"strings"
	"time"

	"staffhub/internal/apperrors"
	"staffhub/internal/authz"
	"staffhub/internal/models"
	"staffhub/internal/repositories"
)

type UserService interface {
	CreateUser(role authz.Role, name, email, password string, newRole authz.Role) (*models.User, error)
	GetUserByID(id int) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	ListUsers(role authz.Role, limit, offset int) ([]*models.User, error)
	DeleteUser(role authz.Role, id int) error
	GetUserCount() (int, error)

	// refresh helpers, consumed by the auth handler
	UpdateRefresh(userID int, token string, expiresAt time.Time) error
	RotateRefresh(oldToken, newToken string, newExpiresAt time.Time) (*models.User, error)
	GetByRefreshToken(token string) (*models.User, error)
}

type userService struct {
	repo         repositories.UserRepository
	emailService EmailService
	authService  AuthService
}

func NewUserService(repo repositories.UserRepository, emailService EmailService, authService AuthService) UserService {
	return &userService{
		repo:         repo,
		emailService: emailService,
		authService:  authService,
	}
}

// CreateUser registers a staff account. Only admins manage users. An unknown
// requested role falls back to "rep" rather than failing the registration.
func (s *userService) CreateUser(role authz.Role, name, email, password string, newRole authz.Role) (*models.User, error) {
	if !authz.CanPerform(role, authz.ActionManageUsers) {
		return nil, apperrors.ErrForbidden
	}
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(strings.ToLower(email))
	if name == "" {
		return nil, &apperrors.ValidationError{Field: "name", Message: "is required"}
	}
	if email == "" {
		return nil, &apperrors.ValidationError{Field: "email", Message: "is required"}
	}
	if strings.TrimSpace(password) == "" {
		return nil, &apperrors.ValidationError{Field: "password", Message: "is required"}
	}
	if !authz.IsKnownRole(newRole) {
		newRole = authz.RoleRep
	}

	hash, err := s.authService.HashPassword(password)
	if err != nil {
		return nil, &apperrors.DependencyError{Op: "hash password", Err: err}
	}
	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         string(newRole),
		CreatedAt:    time.Now(),
	}
	if err := s.repo.Create(user); err != nil {
		if _, ok := err.(*apperrors.ConflictError); ok {
			return nil, err
		}
		return nil, &apperrors.DependencyError{Op: "create user", Err: err}
	}

	if s.emailService != nil {
		if err := s.emailService.SendWelcomeEmail(user.Email, user.Name); err != nil {
			// warn but do not fail creation
			log.Printf("[users][create] warning: failed to send welcome email to %s: %v", user.Email, err)
		}
	}
	return user, nil
}

func (s *userService) GetUserByID(id int) (*models.User, error) {
	return s.repo.GetByID(id)
}

func (s *userService) GetUserByEmail(email string) (*models.User, error) {
	return s.repo.GetByEmail(email)
}

func (s *userService) ListUsers(role authz.Role, limit, offset int) ([]*models.User, error) {
	if !authz.CanPerform(role, authz.ActionManageUsers) {
		return nil, apperrors.ErrForbidden
	}
	return s.repo.List(limit, offset)
}

func (s *userService) DeleteUser(role authz.Role, id int) error {
	if !authz.CanPerform(role, authz.ActionManageUsers) {
		return apperrors.ErrForbidden
	}
	user, err := s.repo.GetByID(id)
	if err != nil {
		return &apperrors.DependencyError{Op: "get user", Err: err}
	}
	if user == nil {
		return &apperrors.NotFoundError{Resource: "user", ID: id}
	}
	return s.repo.Delete(id)
}

func (s *userService) GetUserCount() (int, error) {
	return s.repo.GetCount()
}

func (s *userService) UpdateRefresh(userID int, token string, expiresAt time.Time) error {
	return s.repo.UpdateRefresh(userID, token, expiresAt)
}

func (s *userService) RotateRefresh(oldToken, newToken string, newExpiresAt time.Time) (*models.User, error) {
	return s.repo.RotateRefresh(oldToken, newToken, newExpiresAt)
}

func (s *userService) GetByRefreshToken(token string) (*models.User, error) {
	return s.repo.GetByRefreshToken(token)
}
