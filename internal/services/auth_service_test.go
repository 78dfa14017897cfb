package services

import (
	"testing"
	"time"

	"github.com/internlink/internlink-api/internal/dto"
	"github.com/internlink/internlink-api/internal/models"
	"github.com/internlink/internlink-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newAuthService(t *testing.T) (*AuthService, *gorm.DB) {
	t.Helper()
	db := testutil.NewDB(t)
	svc := NewAuthService(db, NewTokenManager("test-secret", time.Hour))
	svc.hashCost = bcrypt.MinCost
	return svc, db
}

func internSignup(email string) *dto.InternSignupRequest {
	return &dto.InternSignupRequest{
		FullName:   "Ada Lovelace",
		Email:      email,
		Password:   "password123",
		University: "UCL",
		Major:      "Mathematics",
	}
}

func TestSignupInternCreatesUserAndProfile(t *testing.T) {
	svc, db := newAuthService(t)

	user, err := svc.SignupIntern(internSignup("Ada@Example.com"))
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", user.Email)
	assert.Equal(t, models.RoleIntern, user.Role)
	require.NotNil(t, user.InternProfile)
	assert.NotZero(t, user.InternProfile.ID)

	var stored models.User
	require.NoError(t, db.First(&stored, user.ID).Error)
	assert.NotEqual(t, "password123", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("password123")))
}

func TestSignupRejectsDuplicateEmail(t *testing.T) {
	svc, db := newAuthService(t)

	_, err := svc.SignupIntern(internSignup("dup@example.com"))
	require.NoError(t, err)

	_, err = svc.SignupProvider(&dto.ProviderSignupRequest{
		CompanyName: "Acme",
		Email:       "DUP@example.com",
		Password:    "password123",
		Industry:    "Software",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)

	var count int64
	db.Model(&models.User{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestLogin(t *testing.T) {
	svc, db := newAuthService(t)
	user, err := svc.SignupIntern(internSignup("login@example.com"))
	require.NoError(t, err)

	resp, err := svc.Login(&dto.LoginRequest{Email: "login@example.com", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, user.ID, resp.User.ID)
	assert.Equal(t, models.RoleIntern, resp.User.Role)

	id, role, err := svc.tokens.Verify(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, id)
	assert.Equal(t, models.RoleIntern, role)

	_, err = svc.Login(&dto.LoginRequest{Email: "login@example.com", Password: "wrong-password"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(&dto.LoginRequest{Email: "nobody@example.com", Password: "password123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	require.NoError(t, db.Model(&models.User{}).Where("id = ?", user.ID).Update("is_blocked", true).Error)
	_, err = svc.Login(&dto.LoginRequest{Email: "login@example.com", Password: "password123"})
	assert.ErrorIs(t, err, ErrUserBlocked)
}

func TestCreateAdminUpserts(t *testing.T) {
	svc, _ := newAuthService(t)

	admin, err := svc.CreateAdmin("admin@internlink.com", "adminpassword")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, admin.Role)

	again, err := svc.CreateAdmin("admin@internlink.com", "newpassword")
	require.NoError(t, err)
	assert.Equal(t, admin.ID, again.ID)

	_, err = svc.Login(&dto.LoginRequest{Email: "admin@internlink.com", Password: "newpassword"})
	assert.NoError(t, err)
}

func TestMe(t *testing.T) {
	svc, _ := newAuthService(t)
	user, err := svc.SignupIntern(internSignup("me@example.com"))
	require.NoError(t, err)

	me, err := svc.Me(user.ID)
	require.NoError(t, err)
	require.NotNil(t, me.InternProfile)
	assert.Equal(t, "Ada Lovelace", me.InternProfile.FullName)
	assert.Nil(t, me.ProviderProfile)

	_, err = svc.Me(9999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
