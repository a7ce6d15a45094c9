package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careerbridge/jobboard/internal/apperr"
	"github.com/careerbridge/jobboard/internal/dtos"
	"github.com/careerbridge/jobboard/internal/models"
	"github.com/careerbridge/jobboard/internal/services"
)

func TestAuthService_RegisterAndLogin(t *testing.T) {
	db := newTestDB(t)
	auth := services.NewAuthService(db)
	ctx := context.Background()

	userID, err := auth.Register(ctx, &dtos.RegisterRequest{
		Email:    "a@x.com",
		Password: "hunter22",
		Role:     "applicant",
		FullName: "Ada Lovelace",
		Skills:   "Go, SQL",
	})
	require.NoError(t, err)
	require.NotZero(t, userID)

	identity, err := auth.Login(ctx, &dtos.LoginRequest{Email: "a@x.com", Password: "hunter22"})
	require.NoError(t, err)
	assert.Equal(t, userID, identity.UserID)
	assert.Equal(t, "a@x.com", identity.Email)
	assert.Equal(t, models.RoleApplicant, identity.Role)

	// Registration must have created the applicant profile.
	var applicant models.Applicant
	require.NoError(t, db.Where("user_id = ?", userID).First(&applicant).Error)
	assert.Equal(t, "Ada Lovelace", applicant.FullName)
}

func TestAuthService_PasswordIsHashed(t *testing.T) {
	db := newTestDB(t)
	auth := services.NewAuthService(db)

	userID, err := auth.Register(context.Background(), &dtos.RegisterRequest{
		Email:    "hash@x.com",
		Password: "plaintext-never",
		Role:     "company",
	})
	require.NoError(t, err)

	var user models.User
	require.NoError(t, db.First(&user, userID).Error)
	assert.NotEqual(t, "plaintext-never", user.PasswordHash)
	assert.Contains(t, user.PasswordHash, "$2a$")
}

func TestAuthService_RegisterDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	auth := services.NewAuthService(db)
	ctx := context.Background()

	req := &dtos.RegisterRequest{Email: "dup@x.com", Password: "pw123456", Role: "applicant"}
	_, err := auth.Register(ctx, req)
	require.NoError(t, err)

	_, err = auth.Register(ctx, req)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))

	// The failed transaction must not leave a second applicant row behind.
	var count int64
	require.NoError(t, db.Model(&models.Applicant{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestAuthService_RegisterInvalidRole(t *testing.T) {
	db := newTestDB(t)
	auth := services.NewAuthService(db)

	_, err := auth.Register(context.Background(), &dtos.RegisterRequest{
		Email:    "r@x.com",
		Password: "pw123456",
		Role:     "admin",
	})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}

func TestAuthService_LoginFailureIsUniform(t *testing.T) {
	db := newTestDB(t)
	auth := services.NewAuthService(db)
	ctx := context.Background()

	_, err := auth.Register(ctx, &dtos.RegisterRequest{
		Email:    "known@x.com",
		Password: "correct-pw",
		Role:     "applicant",
	})
	require.NoError(t, err)

	_, errUnknown := auth.Login(ctx, &dtos.LoginRequest{Email: "nobody@x.com", Password: "whatever"})
	_, errWrongPw := auth.Login(ctx, &dtos.LoginRequest{Email: "known@x.com", Password: "wrong-pw"})

	require.Error(t, errUnknown)
	require.Error(t, errWrongPw)
	assert.True(t, apperr.IsKind(errUnknown, apperr.KindInvalidCredentials))
	assert.True(t, apperr.IsKind(errWrongPw, apperr.KindInvalidCredentials))

	// Identical shape: the caller cannot tell which half failed.
	assert.Equal(t, errUnknown.Error(), errWrongPw.Error())
}

func TestAuthService_LoginIsCaseInsensitiveOnEmail(t *testing.T) {
	db := newTestDB(t)
	auth := services.NewAuthService(db)
	ctx := context.Background()

	_, err := auth.Register(ctx, &dtos.RegisterRequest{
		Email:    "Mixed@X.com",
		Password: "pw123456",
		Role:     "company",
	})
	require.NoError(t, err)

	identity, err := auth.Login(ctx, &dtos.LoginRequest{Email: "mixed@x.com", Password: "pw123456"})
	require.NoError(t, err)
	assert.Equal(t, "mixed@x.com", identity.Email)
}
