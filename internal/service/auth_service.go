package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"landing-cms-be/internal/dto"
	"landing-cms-be/internal/model"
	"landing-cms-be/internal/pkg/serverutils"
	"landing-cms-be/internal/repository/specification"
	"landing-cms-be/internal/repository/unitofwork"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/oauth2"
)

const (
	tokenTTL          = 24 * time.Hour
	maxLoginAttempts  = 5
	loginAttemptReset = 15 * time.Minute
)

type IAuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Logout(ctx context.Context, tokenStr string) error
	GoogleLogin(ctx context.Context, code string) (*dto.LoginResponse, error)
}

type authService struct {
	uowFactory  unitofwork.RepositoryFactory
	jwtSecret   string
	rdb         *redis.Client // optional revocation store
	attempts    *gocache.Cache
	oauthConfig *oauth2.Config // optional google login
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, jwtSecret string, rdb *redis.Client, oauthConfig *oauth2.Config) IAuthService {
	return &authService{
		uowFactory:  uowFactory,
		jwtSecret:   jwtSecret,
		rdb:         rdb,
		attempts:    gocache.New(loginAttemptReset, 2*loginAttemptReset),
		oauthConfig: oauthConfig,
	}
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	if n, found := s.attempts.Get(req.Email); found && n.(int) >= maxLoginAttempts {
		return nil, serverutils.NewValidationError("too many failed attempts, try again later")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.Filter("email", req.Email))
	if err != nil {
		return nil, err
	}
	if user == nil || user.PasswordHash == nil {
		s.recordFailure(req.Email)
		return nil, serverutils.NewValidationError("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(req.Password)); err != nil {
		s.recordFailure(req.Email)
		return nil, serverutils.NewValidationError("invalid credentials")
	}
	s.attempts.Delete(req.Email)

	token, err := s.issueToken(user)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: user}, nil
}

// Logout revokes the token's jti until it would have expired anyway. Without
// Redis logout is a client-side operation only.
func (s *authService) Logout(ctx context.Context, tokenStr string) error {
	if s.rdb == nil {
		return nil
	}

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return serverutils.NewValidationError("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return serverutils.NewValidationError("invalid token")
	}
	jti, _ := claims["jti"].(string)
	if jti == "" {
		return nil
	}

	ttl := tokenTTL
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		if remain := time.Until(exp.Time); remain > 0 {
			ttl = remain
		}
	}
	return s.rdb.Set(ctx, serverutils.RevocationKey(jti), 1, ttl).Err()
}

// GoogleLogin exchanges an OAuth code, resolves the google profile and signs
// the matching local account in, creating it on first login.
func (s *authService) GoogleLogin(ctx context.Context, code string) (*dto.LoginResponse, error) {
	if s.oauthConfig == nil {
		return nil, serverutils.NewValidationError("google login is not configured")
	}

	oauthToken, err := s.oauthConfig.Exchange(ctx, code)
	if err != nil {
		return nil, serverutils.NewValidationError("invalid authorization code")
	}

	profile, err := fetchGoogleProfile(ctx, s.oauthConfig, oauthToken)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.Filter("email", profile.Email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		user = &model.User{
			Email:    profile.Email,
			FullName: profile.Name,
			Role:     model.RoleUser,
		}
		if profile.Picture != "" {
			user.AvatarURL = &profile.Picture
		}
		if err := uow.UserRepository().Create(ctx, user); err != nil {
			return nil, err
		}
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: user}, nil
}

func (s *authService) issueToken(user *model.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": fmt.Sprintf("%d", user.Id),
		"email":   user.Email,
		"role":    user.Role,
		"jti":     uuid.NewString(),
		"exp":     time.Now().Add(tokenTTL).Unix(),
		"iat":     time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

func (s *authService) recordFailure(email string) {
	if n, found := s.attempts.Get(email); found {
		s.attempts.Set(email, n.(int)+1, loginAttemptReset)
		return
	}
	s.attempts.Set(email, 1, loginAttemptReset)
}

type googleProfile struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

func fetchGoogleProfile(ctx context.Context, cfg *oauth2.Config, token *oauth2.Token) (*googleProfile, error) {
	client := cfg.Client(ctx, token)
	resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("userinfo endpoint returned %d", resp.StatusCode)
	}

	var profile googleProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, err
	}
	if profile.Email == "" {
		return nil, serverutils.NewValidationError("google account has no email")
	}
	return &profile, nil
}
