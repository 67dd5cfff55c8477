package delivery

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"lawdesk-backend/internal/apperr"
	authdomain "lawdesk-backend/internal/auth/domain"
	authdto "lawdesk-backend/internal/auth/dto"
	"lawdesk-backend/pkg/config"
)

// stubAuthUsecase lets each test script the usecase outcomes.
type stubAuthUsecase struct {
	signup        func(req *authdto.SignupRequest) (*authdomain.User, error)
	login         func(req *authdto.LoginRequest) (*authdomain.User, error)
	getUser       func(id string) (*authdomain.User, error)
	verifySession func(token string) (string, error)
	googleLogin   func(ctx context.Context, code string) (*authdomain.User, error)
}

func (s *stubAuthUsecase) Signup(req *authdto.SignupRequest) (*authdomain.User, error) {
	return s.signup(req)
}

func (s *stubAuthUsecase) Login(req *authdto.LoginRequest) (*authdomain.User, error) {
	return s.login(req)
}

func (s *stubAuthUsecase) GetUser(id string) (*authdomain.User, error) {
	return s.getUser(id)
}

func (s *stubAuthUsecase) IssueSession(userID string) (string, error) {
	return "signed-token-for-" + userID, nil
}

func (s *stubAuthUsecase) VerifySession(token string) (string, error) {
	return s.verifySession(token)
}

func (s *stubAuthUsecase) GoogleAuthURL(state string) (string, error) {
	return "https://accounts.example.com/auth?state=" + state, nil
}

func (s *stubAuthUsecase) CompleteGoogleLogin(ctx context.Context, code string) (*authdomain.User, error) {
	return s.googleLogin(ctx, code)
}

func testRouter(stub *stubAuthUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{JWTExpiry: 168 * time.Hour}
	h := NewAuthHandler(stub, cfg, zap.NewNop().Sugar())

	r := gin.New()
	r.POST("/signup", h.Signup)
	r.POST("/login", h.Login)
	r.POST("/logout", h.Logout)
	r.GET("/me", AuthMiddleware(stub), h.Me)
	r.GET("/auth/google", h.GoogleRedirect)
	r.GET("/auth/google/callback", h.GoogleCallback)
	return r
}

func cookieByName(res *http.Response, name string) *http.Cookie {
	for _, ck := range res.Cookies() {
		if ck.Name == name {
			return ck
		}
	}
	return nil
}

func TestSignupSetsSessionCookie(t *testing.T) {
	stub := &stubAuthUsecase{
		signup: func(req *authdto.SignupRequest) (*authdomain.User, error) {
			return &authdomain.User{ID: "u1", Name: req.Name, Email: req.Email}, nil
		},
	}
	r := testRouter(stub)

	w := httptest.NewRecorder()
	body := `{"name":"Jane","email":"jane@x.com","password":"password123"}`
	req := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"email":"jane@x.com"`)
	assert.NotContains(t, w.Body.String(), "password")

	ck := cookieByName(w.Result(), "authToken")
	require.NotNil(t, ck)
	assert.Equal(t, "signed-token-for-u1", ck.Value)
	assert.True(t, ck.HttpOnly)
}

func TestSignupDuplicateEmail(t *testing.T) {
	stub := &stubAuthUsecase{
		signup: func(req *authdto.SignupRequest) (*authdomain.User, error) {
			return nil, apperr.ErrDuplicateEmail
		},
	}
	r := testRouter(stub)

	w := httptest.NewRecorder()
	body := `{"name":"Jane","email":"jane@x.com","password":"password123"}`
	req := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestLoginInvalidCredentials(t *testing.T) {
	stub := &stubAuthUsecase{
		login: func(req *authdto.LoginRequest) (*authdomain.User, error) {
			return nil, apperr.ErrInvalidCredentials
		},
	}
	r := testRouter(stub)

	w := httptest.NewRecorder()
	body := `{"email":"jane@x.com","password":"wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Nil(t, cookieByName(w.Result(), "authToken"))
}

func TestLogoutClearsCookie(t *testing.T) {
	r := testRouter(&stubAuthUsecase{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	ck := cookieByName(w.Result(), "authToken")
	require.NotNil(t, ck)
	assert.Empty(t, ck.Value)
	assert.Negative(t, ck.MaxAge)
}

func TestMeRequiresSession(t *testing.T) {
	stub := &stubAuthUsecase{
		verifySession: func(token string) (string, error) {
			if token == "valid" {
				return "u1", nil
			}
			return "", apperr.ErrInvalidToken
		},
		getUser: func(id string) (*authdomain.User, error) {
			return &authdomain.User{ID: id, Name: "Jane", Email: "jane@x.com"}, nil
		},
	}
	r := testRouter(stub)

	// No cookie
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Bad cookie
	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: "authToken", Value: "garbage"})
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Valid cookie
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: "authToken", Value: "valid"})
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"u1"`)
}

func TestGoogleRedirectIssuesStateCookie(t *testing.T) {
	r := testRouter(&stubAuthUsecase{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/auth/google", nil))

	require.Equal(t, http.StatusFound, w.Code)
	ck := cookieByName(w.Result(), "google_oauth_state")
	require.NotNil(t, ck)
	assert.Len(t, ck.Value, 32, "state is 16 random bytes hex encoded")
	assert.True(t, ck.HttpOnly)
	assert.Equal(t, stateTTL, ck.MaxAge)

	loc := w.Header().Get("Location")
	assert.Contains(t, loc, "state="+ck.Value)
}

func TestGoogleCallbackStateMismatch(t *testing.T) {
	r := testRouter(&stubAuthUsecase{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/auth/google/callback?code=abc&state=bbb", nil)
	req.AddCookie(&http.Cookie{Name: "google_oauth_state", Value: "aaa"})
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusFound, w.Code)
	assert.Contains(t, w.Header().Get("Location"), "Invalid+authentication+state")

	// The state cookie is consumed regardless of outcome
	ck := cookieByName(w.Result(), "google_oauth_state")
	require.NotNil(t, ck)
	assert.Empty(t, ck.Value)
	assert.Negative(t, ck.MaxAge)
}

func TestGoogleCallbackMissingStateCookie(t *testing.T) {
	r := testRouter(&stubAuthUsecase{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/auth/google/callback?code=abc&state=aaa", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusFound, w.Code)
	assert.Contains(t, w.Header().Get("Location"), "Invalid+authentication+state")
}

func TestGoogleCallbackProviderError(t *testing.T) {
	r := testRouter(&stubAuthUsecase{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/auth/google/callback?error=access_denied", nil)
	req.AddCookie(&http.Cookie{Name: "google_oauth_state", Value: "aaa"})
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusFound, w.Code)
	assert.Contains(t, w.Header().Get("Location"), "Google+authentication+failed")
}

func TestGoogleCallbackMissingCode(t *testing.T) {
	r := testRouter(&stubAuthUsecase{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/auth/google/callback?state=aaa", nil)
	req.AddCookie(&http.Cookie{Name: "google_oauth_state", Value: "aaa"})
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusFound, w.Code)
	assert.Contains(t, w.Header().Get("Location"), "Missing+authorization+code")
}

func TestGoogleCallbackSuccessIssuesSession(t *testing.T) {
	stub := &stubAuthUsecase{
		googleLogin: func(ctx context.Context, code string) (*authdomain.User, error) {
			require.Equal(t, "good-code", code)
			return &authdomain.User{ID: "u9", Email: "jane@x.com"}, nil
		},
	}
	r := testRouter(stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/auth/google/callback?code=good-code&state=aaa", nil)
	req.AddCookie(&http.Cookie{Name: "google_oauth_state", Value: "aaa"})
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	// Same signed session cookie as password login, per the unified flow
	ck := cookieByName(w.Result(), "authToken")
	require.NotNil(t, ck)
	assert.Equal(t, "signed-token-for-u9", ck.Value)
}

func TestGoogleCallbackExchangeFailure(t *testing.T) {
	stub := &stubAuthUsecase{
		googleLogin: func(ctx context.Context, code string) (*authdomain.User, error) {
			return nil, errors.New("failed to authenticate with Google")
		},
	}
	r := testRouter(stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/auth/google/callback?code=bad&state=aaa", nil)
	req.AddCookie(&http.Cookie{Name: "google_oauth_state", Value: "aaa"})
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusFound, w.Code)
	assert.Contains(t, w.Header().Get("Location"), "Authentication+process+failed")
	assert.Nil(t, cookieByName(w.Result(), "authToken"))
}
