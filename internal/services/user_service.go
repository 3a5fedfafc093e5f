package services

import (
	"context"
	"errors"

	"github.com/firstshift/jobboard/internal/apperr"
	"github.com/firstshift/jobboard/internal/auth"
	"github.com/firstshift/jobboard/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db}
}

// Register creates a user with a hashed password. The email unique index is
// the source of truth for duplicates, not a pre-check.
func (s *UserService) Register(ctx context.Context, name, email, password string, role models.Role) (*models.User, error) {
	if !role.Valid() {
		return nil, apperr.Validation("role must be one of business, applicant, admin")
	}
	if len(password) < 8 {
		return nil, apperr.Validation("password must be at least 8 characters")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}
	if err := s.DB.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("email already registered")
		}
		return nil, err
	}
	return user, nil
}

// Authenticate verifies credentials. Unknown email and wrong password return
// the same generic error so the endpoint cannot be used to enumerate emails.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	var user models.User
	err := s.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Auth("invalid credentials")
		}
		return nil, err
	}
	if !auth.CheckPassword(password, user.PasswordHash) {
		return nil, apperr.Auth("invalid credentials")
	}
	return &user, nil
}

// GetByID loads a user by id.
func (s *UserService) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := s.DB.WithContext(ctx).First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("user not found")
		}
		return nil, err
	}
	return &user, nil
}

// UpsertOAuthUser returns the existing user for the email, or creates one.
// First-time OAuth users get a random unusable password hash so the account
// cannot be entered through the password login.
func (s *UserService) UpsertOAuthUser(ctx context.Context, email, name string, role models.Role) (*models.User, error) {
	if !role.Valid() {
		role = models.RoleApplicant
	}

	var user models.User
	err := s.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := auth.HashPassword(uuid.New().String())
	if err != nil {
		return nil, err
	}
	user = models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}
	if err := s.DB.WithContext(ctx).Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost a race with a concurrent first login for the same email.
			if err := s.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
				return nil, err
			}
			return &user, nil
		}
		return nil, err
	}
	return &user, nil
}
