package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nishantgoyal/fashionhub-api/internal/application/service"
	"github.com/nishantgoyal/fashionhub-api/internal/presentation/http/dto/request"
	"github.com/nishantgoyal/fashionhub-api/internal/presentation/http/dto/response"
	"github.com/nishantgoyal/fashionhub-api/pkg/oauth"
)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	authService *service.AuthService
	oauthSvc    *oauth.GoogleOAuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService, oauthSvc *oauth.GoogleOAuthService) *AuthHandler {
	return &AuthHandler{authService: authService, oauthSvc: oauthSvc}
}

// Login handles user login
// @Summary Login
// @Description Authenticate an owner (email/password) or staff member (staff_id/pin)
// @Tags auth
// @Accept json
// @Produce json
// @Param request body request.LoginRequest true "Login credentials"
// @Success 200 {object} response.APIResponse
// @Failure 401 {object} response.APIResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	output, err := h.authService.Login(c.Request.Context(), &service.LoginInput{
		Email:    req.Email,
		Password: req.Password,
		StaffID:  req.StaffID,
		PIN:      req.PIN,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Login successful", gin.H{
		"user":          output.User,
		"access_token":  output.AccessToken,
		"refresh_token": output.RefreshToken,
		"token_type":    "Bearer",
	})
}

// RegisterStaff handles staff account creation by the owner
// @Summary Register staff
// @Description Create a staff account with a staff ID and PIN
// @Tags auth
// @Accept json
// @Produce json
// @Param request body request.RegisterStaffRequest true "Staff data"
// @Success 201 {object} response.APIResponse
// @Failure 409 {object} response.APIResponse
// @Router /auth/register-staff [post]
func (h *AuthHandler) RegisterStaff(c *gin.Context) {
	var req request.RegisterStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.authService.RegisterStaff(c.Request.Context(), &service.RegisterStaffInput{
		Name:    req.Name,
		StaffID: req.StaffID,
		PIN:     req.PIN,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Staff registered successfully", gin.H{"user": user})
}

// RefreshToken handles token refresh
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req request.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	output, err := h.authService.RefreshToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Token refreshed successfully", gin.H{
		"access_token":  output.AccessToken,
		"refresh_token": output.RefreshToken,
		"token_type":    "Bearer",
	})
}

// Logout handles user logout
// @Summary Logout
// @Description Logout user (client should discard tokens)
// @Tags auth
// @Security BearerAuth
// @Success 200 {object} response.APIResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	// JWT is stateless, so we just return success
	// Client should discard the tokens
	response.OK(c, "Logged out successfully", nil)
}

// Me returns the authenticated user's profile
func (h *AuthHandler) Me(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	user, err := h.authService.GetCurrentUser(c.Request.Context(), *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "User retrieved successfully", gin.H{"user": user})
}

// ListStaff returns every user account
func (h *AuthHandler) ListStaff(c *gin.Context) {
	users, err := h.authService.ListStaff(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Staff retrieved successfully", gin.H{"users": users})
}

// GoogleLogin redirects to Google's consent screen
func (h *AuthHandler) GoogleLogin(c *gin.Context) {
	if h.oauthSvc == nil || !h.oauthSvc.IsConfigured() {
		response.BadRequest(c, "Google sign-in is not configured")
		return
	}

	state := c.Query("state")
	c.Redirect(http.StatusTemporaryRedirect, h.oauthSvc.GetAuthURL(state))
}

// GoogleCallback exchanges the OAuth code for tokens and redirects to
// the frontend with the session tokens in the fragment.
func (h *AuthHandler) GoogleCallback(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		response.BadRequest(c, "Missing authorization code")
		return
	}

	output, err := h.authService.GoogleAuth(c.Request.Context(), code)
	if err != nil {
		if h.oauthSvc != nil && h.oauthSvc.GetFrontendErrorURL() != "" {
			c.Redirect(http.StatusTemporaryRedirect, h.oauthSvc.GetFrontendErrorURL())
			return
		}
		response.Error(c, err)
		return
	}

	if h.oauthSvc != nil && h.oauthSvc.GetFrontendSuccessURL() != "" {
		c.Redirect(http.StatusTemporaryRedirect,
			h.oauthSvc.GetFrontendSuccessURL()+"#access_token="+output.AccessToken+"&refresh_token="+output.RefreshToken)
		return
	}

	response.OK(c, "Login successful", gin.H{
		"user":          output.User,
		"access_token":  output.AccessToken,
		"refresh_token": output.RefreshToken,
		"token_type":    "Bearer",
	})
}
