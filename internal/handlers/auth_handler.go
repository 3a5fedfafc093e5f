package handlers

import (
	"net/http"
	"strings"

	"github.com/firstshift/jobboard/internal/auth"
	"github.com/firstshift/jobboard/internal/dtos"
	"github.com/firstshift/jobboard/internal/models"
	"github.com/firstshift/jobboard/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/oauth2"
)

const oauthStateCookie = "oauth_state"

type AuthHandler struct {
	Users  *services.UserService
	Tokens *auth.TokenManager
	Google *oauth2.Config
}

func NewAuthHandler(users *services.UserService, tokens *auth.TokenManager, google *oauth2.Config) *AuthHandler {
	return &AuthHandler{Users: users, Tokens: tokens, Google: google}
}

// Register is POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dtos.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	user, err := h.Users.Register(c.Request.Context(), req.Name, req.Email, req.Password, models.Role(req.Role))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dtos.NewUserResponse(user))
}

// Login is POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dtos.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	user, err := h.Users.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	token, err := h.Tokens.Issue(user)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dtos.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        dtos.NewUserResponse(user),
	})
}

// Me is GET /auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
		return
	}
	c.JSON(http.StatusOK, dtos.NewUserResponse(&user))
}

// GoogleLogin is GET /auth/google/login. The state nonce goes into a
// short-lived cookie; the requested role rides along in the same cookie.
func (h *AuthHandler) GoogleLogin(c *gin.Context) {
	if h.Google == nil {
		c.JSON(http.StatusNotImplemented, gin.H{"error": "google oauth not configured"})
		return
	}

	role := c.DefaultQuery("role", string(models.RoleApplicant))
	if role != string(models.RoleApplicant) && role != string(models.RoleBusiness) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "role must be applicant or business"})
		return
	}

	state := uuid.New().String()
	c.SetCookie(oauthStateCookie, state+":"+role, 600, "/", "", false, true)
	c.Redirect(http.StatusTemporaryRedirect, h.Google.AuthCodeURL(state))
}

// GoogleCallback is GET /auth/google/callback
func (h *AuthHandler) GoogleCallback(c *gin.Context) {
	if h.Google == nil {
		c.JSON(http.StatusNotImplemented, gin.H{"error": "google oauth not configured"})
		return
	}

	cookie, err := c.Cookie(oauthStateCookie)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing oauth state"})
		return
	}
	c.SetCookie(oauthStateCookie, "", -1, "/", "", false, true)

	state, role, ok := splitStateCookie(cookie)
	if !ok || c.Query("state") != state {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid oauth state"})
		return
	}

	info, err := auth.FetchGoogleUser(c.Request.Context(), h.Google, c.Query("code"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "google login failed"})
		return
	}

	user, err := h.Users.UpsertOAuthUser(c.Request.Context(), info.Email, info.Name, models.Role(role))
	if err != nil {
		writeError(c, err)
		return
	}

	token, err := h.Tokens.Issue(user)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dtos.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        dtos.NewUserResponse(user),
	})
}

func splitStateCookie(cookie string) (state, role string, ok bool) {
	return strings.Cut(cookie, ":")
}
