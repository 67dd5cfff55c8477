package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"lawdesk-backend/internal/apperr"
	authdomain "lawdesk-backend/internal/auth/domain"
	authdto "lawdesk-backend/internal/auth/dto"
	"lawdesk-backend/internal/auth/repository"
	"lawdesk-backend/pkg/config"
)

const minPasswordLength = 8

// sessionClaims is the payload of the signed session token.
type sessionClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"userId"`
}

// authUsecase implements AuthUsecase interface
type authUsecase struct {
	userRepo    repository.UserRepository
	config      *config.Config
	logger      *zap.SugaredLogger
	oauthCfg    *oauth2.Config
	userInfoURL string
}

// NewAuthUsecase creates a new instance of authUsecase
func NewAuthUsecase(userRepo repository.UserRepository, cfg *config.Config, logger *zap.SugaredLogger) AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		config:   cfg,
		logger:   logger,
		oauthCfg: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.AppBaseURL + "/auth/google/callback",
			Scopes:       []string{"email", "profile"},
			Endpoint:     google.Endpoint,
		},
		userInfoURL: "https://www.googleapis.com/oauth2/v2/userinfo",
	}
}

func (u *authUsecase) Signup(req *authdto.SignupRequest) (*authdomain.User, error) {
	if len(req.Password) < minPasswordLength {
		return nil, apperr.ErrPasswordTooShort
	}

	existing, err := u.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.ErrDuplicateEmail
	}

	hashedPassword, err := repository.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &authdomain.User{
		Email:    req.Email,
		Password: hashedPassword,
		Name:     req.Name,
		Provider: "email",
	}
	if err := u.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (u *authUsecase) Login(req *authdto.LoginRequest) (*authdomain.User, error) {
	user, err := u.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.ErrInvalidCredentials
	}
	if !repository.CheckPasswordHash(req.Password, user.Password) {
		return nil, apperr.ErrInvalidCredentials
	}
	return user, nil
}

func (u *authUsecase) GetUser(id string) (*authdomain.User, error) {
	user, err := u.userRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.ErrNotFound
	}
	return user, nil
}

func (u *authUsecase) IssueSession(userID string) (string, error) {
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(u.config.JWTExpiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		UserID: userID,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(u.config.JWTSecret))
}

func (u *authUsecase) VerifySession(tokenString string) (string, error) {
	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(u.config.JWTSecret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !token.Valid || claims.UserID == "" {
		return "", apperr.ErrInvalidToken
	}
	return claims.UserID, nil
}

func (u *authUsecase) GoogleAuthURL(state string) (string, error) {
	if u.oauthCfg.ClientID == "" || u.config.AppBaseURL == "" {
		return "", apperr.ErrOAuthNotConfigured
	}
	return u.oauthCfg.AuthCodeURL(state), nil
}

// googleUserInfo is the subset of the userinfo response the flow needs.
type googleUserInfo struct {
	Email         string `json:"email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
	VerifiedEmail bool   `json:"verified_email"`
}

func (u *authUsecase) CompleteGoogleLogin(ctx context.Context, code string) (*authdomain.User, error) {
	if u.oauthCfg.ClientID == "" || u.oauthCfg.ClientSecret == "" {
		return nil, apperr.ErrOAuthNotConfigured
	}

	token, err := u.oauthCfg.Exchange(ctx, code)
	if err != nil {
		u.logger.Errorw("google token exchange failed", "error", err)
		return nil, fmt.Errorf("failed to authenticate with Google")
	}

	info, err := u.fetchUserInfo(ctx, token)
	if err != nil {
		u.logger.Errorw("google userinfo fetch failed", "error", err)
		return nil, fmt.Errorf("failed to get user information from Google")
	}

	user, err := u.userRepo.FindByEmail(info.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		user = &authdomain.User{
			Email:    info.Email,
			Name:     info.Name,
			Image:    info.Picture,
			Provider: "google",
		}
		if err := u.userRepo.Create(user); err != nil {
			return nil, err
		}
		return user, nil
	}

	user.Name = info.Name
	user.Image = info.Picture
	if err := u.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (u *authUsecase) fetchUserInfo(ctx context.Context, token *oauth2.Token) (*googleUserInfo, error) {
	client := u.oauthCfg.Client(ctx, token)
	resp, err := client.Get(u.userInfoURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("userinfo status %d: %s", resp.StatusCode, string(body))
	}

	var info googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, err
	}
	return &info, nil
}
