package services

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/careerbridge/jobboard/internal/apperr"
	"github.com/careerbridge/jobboard/internal/dtos"
	"github.com/careerbridge/jobboard/internal/models"
)

// dummyHash is compared against when the email is unknown, so a failed
// login takes the same time whether the email or the password was wrong.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

type AuthService struct {
	DB *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{DB: db}
}

// Register creates a User plus its role-specific profile row in one
// transaction. Returns the new user id.
func (s *AuthService) Register(ctx context.Context, req *dtos.RegisterRequest) (uint, error) {
	role := strings.ToLower(strings.TrimSpace(req.Role))
	if !models.ValidRole(role) {
		return 0, apperr.Validation("role must be 'applicant' or 'company'")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return 0, wrapStore(err)
	}

	user := models.User{
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hash),
		Role:         role,
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperr.Conflict("email already registered")
			}
			return wrapStore(err)
		}

		switch role {
		case models.RoleApplicant:
			applicant := models.Applicant{
				UserID:   user.ID,
				FullName: req.FullName,
				Skills:   req.Skills,
			}
			if err := tx.Create(&applicant).Error; err != nil {
				return wrapStore(err)
			}
		case models.RoleCompany:
			company := models.Company{
				UserID:      user.ID,
				CompanyName: req.CompanyName,
			}
			if err := tx.Create(&company).Error; err != nil {
				return wrapStore(err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return user.ID, nil
}

// Login verifies the credential and returns the identity projection.
// Unknown email and wrong password produce the identical error.
func (s *AuthService) Login(ctx context.Context, req *dtos.LoginRequest) (*dtos.LoginResponse, error) {
	var user models.User
	err := s.DB.WithContext(ctx).
		Where("email = ?", strings.ToLower(strings.TrimSpace(req.Email))).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(req.Password))
			return nil, apperr.InvalidCredentials()
		}
		return nil, wrapStore(err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, apperr.InvalidCredentials()
	}

	return &dtos.LoginResponse{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	}, nil
}
