package service_test

import (
	"context"
	"testing"

	"landing-cms-be/internal/dto"
	"landing-cms-be/internal/model"
	"landing-cms-be/internal/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

func seedCredentialedUser(t *testing.T, db *gorm.DB, email, password, role string) *model.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	hashStr := string(hash)
	u := &model.User{Email: email, FullName: "Test", PasswordHash: &hashStr, Role: role}
	require.NoError(t, db.Create(u).Error)
	return u
}

func TestLoginIssuesTokenWithClaims(t *testing.T) {
	factory, db := newTestFactory(t)
	seedCredentialedUser(t, db, "admin@example.com", "secret123", model.RoleAdmin)
	svc := service.NewAuthService(factory, testSecret, nil, nil)

	res, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "admin@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	require.NotEmpty(t, res.Token)
	assert.Equal(t, "admin@example.com", res.User.Email)

	token, err := jwt.Parse(res.Token, func(t *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, model.RoleAdmin, claims["role"])
	assert.Equal(t, "admin@example.com", claims["email"])
	assert.NotEmpty(t, claims["jti"])
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	factory, db := newTestFactory(t)
	seedCredentialedUser(t, db, "admin@example.com", "secret123", model.RoleAdmin)
	svc := service.NewAuthService(factory, testSecret, nil, nil)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "admin@example.com",
		Password: "wrong",
	})
	require.Error(t, err)
	assert.Equal(t, "invalid credentials", err.Error())
}

func TestLoginRejectsUnknownUser(t *testing.T) {
	factory, _ := newTestFactory(t)
	svc := service.NewAuthService(factory, testSecret, nil, nil)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	require.Error(t, err)
	assert.Equal(t, "invalid credentials", err.Error())
}

func TestLoginThrottlesRepeatedFailures(t *testing.T) {
	factory, db := newTestFactory(t)
	seedCredentialedUser(t, db, "admin@example.com", "secret123", model.RoleAdmin)
	svc := service.NewAuthService(factory, testSecret, nil, nil)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := svc.Login(ctx, &dto.LoginRequest{Email: "admin@example.com", Password: "wrong"})
		require.Error(t, err)
	}

	// Even the right password is refused while throttled.
	_, err := svc.Login(ctx, &dto.LoginRequest{Email: "admin@example.com", Password: "secret123"})
	require.Error(t, err)
	assert.Equal(t, "too many failed attempts, try again later", err.Error())
}

func TestUserCreateRejectsDuplicateEmail(t *testing.T) {
	factory, db := newTestFactory(t)
	seedCredentialedUser(t, db, "admin@example.com", "secret123", model.RoleAdmin)
	svc := service.NewUserService(factory)

	_, err := svc.Create(context.Background(), &dto.CreateUserRequest{
		Email:    "admin@example.com",
		Password: "password1",
		FullName: "Dup",
	})
	require.Error(t, err)
	assert.Equal(t, "email is already registered", err.Error())
}

func TestUserCreateDefaultsRole(t *testing.T) {
	factory, _ := newTestFactory(t)
	svc := service.NewUserService(factory)

	u, err := svc.Create(context.Background(), &dto.CreateUserRequest{
		Email:    "new@example.com",
		Password: "password1",
		FullName: "New User",
	})
	require.NoError(t, err)
	assert.Equal(t, model.RoleUser, u.Role)
	require.NotNil(t, u.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*u.PasswordHash), []byte("password1")))
}
