package delivery

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"lawdesk-backend/internal/apperr"
	authdto "lawdesk-backend/internal/auth/dto"
	"lawdesk-backend/internal/auth/usecase"
	"lawdesk-backend/pkg/config"
)

const (
	sessionCookie = "authToken"
	stateCookie   = "google_oauth_state"
	stateTTL      = 600 // 10 minutes
)

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	config      *config.Config
	logger      *zap.SugaredLogger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authUsecase usecase.AuthUsecase, cfg *config.Config, logger *zap.SugaredLogger) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		config:      cfg,
		logger:      logger,
	}
}

// Signup creates an account and starts a session
// POST /signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req authdto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are required"})
		return
	}

	user, err := h.authUsecase.Signup(&req)
	if err != nil {
		h.fail(c, err, "signup failed")
		return
	}

	if err := h.setSessionCookie(c, user.ID); err != nil {
		h.fail(c, err, "signup session failed")
		return
	}
	c.JSON(http.StatusCreated, authdto.UserResponse{User: user})
}

// Login verifies credentials and starts a session
// POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var req authdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email and password are required"})
		return
	}

	user, err := h.authUsecase.Login(&req)
	if err != nil {
		h.fail(c, err, "login failed")
		return
	}

	if err := h.setSessionCookie(c, user.ID); err != nil {
		h.fail(c, err, "login session failed")
		return
	}
	c.JSON(http.StatusOK, authdto.UserResponse{User: user})
}

// Logout clears the session cookie. The signed token stays valid until its
// natural expiry; there is no server-side revocation list.
// POST /logout
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(sessionCookie, "", -1, "/", "", h.config.IsProduction(), true)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Me returns the authenticated user
// GET /me
func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetString("userID")
	user, err := h.authUsecase.GetUser(userID)
	if err != nil {
		h.fail(c, err, "me lookup failed")
		return
	}
	c.JSON(http.StatusOK, authdto.UserResponse{User: user})
}

// GoogleRedirect starts the OAuth flow: issues the CSRF state cookie and
// redirects to the provider consent screen.
// GET /auth/google
func (h *AuthHandler) GoogleRedirect(c *gin.Context) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		h.redirectError(c, "Authentication process failed")
		return
	}
	state := hex.EncodeToString(buf)

	c.SetCookie(stateCookie, state, stateTTL, "/", "", h.config.IsProduction(), true)

	authURL, err := h.authUsecase.GoogleAuthURL(state)
	if err != nil {
		h.redirectError(c, "Google authentication is not properly configured. Missing API credentials.")
		return
	}
	c.Redirect(http.StatusFound, authURL)
}

// GoogleCallback finishes the OAuth flow. The state cookie is consumed
// exactly once regardless of outcome.
// GET /auth/google/callback?code&state&error
func (h *AuthHandler) GoogleCallback(c *gin.Context) {
	if errParam := c.Query("error"); errParam != "" {
		h.redirectError(c, "Google authentication failed: "+errParam)
		return
	}

	storedState, err := c.Cookie(stateCookie)
	// Clear the state cookie unconditionally once read
	c.SetCookie(stateCookie, "", -1, "/", "", h.config.IsProduction(), true)

	if err != nil || storedState == "" || c.Query("state") != storedState {
		h.redirectError(c, "Invalid authentication state, please try again")
		return
	}

	code := c.Query("code")
	if code == "" {
		h.redirectError(c, "Missing authorization code from Google")
		return
	}

	user, err := h.authUsecase.CompleteGoogleLogin(c.Request.Context(), code)
	if err != nil {
		h.logger.Errorw("google callback failed", "error", err)
		h.redirectError(c, "Authentication process failed")
		return
	}

	if err := h.setSessionCookie(c, user.ID); err != nil {
		h.logger.Errorw("google session issue failed", "error", err)
		h.redirectError(c, "Authentication process failed")
		return
	}
	c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, userID string) error {
	token, err := h.authUsecase.IssueSession(userID)
	if err != nil {
		return err
	}
	c.SetCookie(sessionCookie, token, int(h.config.JWTExpiry.Seconds()), "/", "", h.config.IsProduction(), true)
	return nil
}

func (h *AuthHandler) redirectError(c *gin.Context, msg string) {
	c.Redirect(http.StatusFound, "/?error="+url.QueryEscape(msg))
}

func (h *AuthHandler) fail(c *gin.Context, err error, logMsg string) {
	status := apperr.Status(err)
	if status == http.StatusInternalServerError {
		h.logger.Errorw(logMsg, "error", err)
	}
	c.JSON(status, gin.H{"message": apperr.Message(err)})
}
