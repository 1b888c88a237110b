package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/crime_analysis_system/internal/models"
)

// @Summary Register a new user
// @Description Create a user account together with its profile.
// @Tags Accounts
// @Accept json
// @Produce json
// @Param user body RegisterRequest true "Registration request"
// @Success 201 {object} AuthResponse
// @Failure 400 {object} ErrorResponse "Validation error"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /accounts/auth/register [post]
func (h *Handler) register(c *gin.Context) {
	var input RegisterRequest
	log := h.log(c, "register")
	if !h.bindJSON(c, log, &input) {
		return
	}

	user, err := h.accounts.Register(c.Request.Context(), DTOToRegisterInput(input, c.ClientIP()))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, AuthResponse{Message: "User registered successfully", User: user})
}

// @Summary Log in
// @Description Check credentials and open a session. The session id is returned in the sessionid cookie.
// @Tags Accounts
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Login request"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} ErrorResponse "Validation error"
// @Failure 401 {object} ErrorResponse "Invalid credentials"
// @Failure 429 {object} ErrorResponse "Too many attempts"
// @Router /accounts/auth/login [post]
func (h *Handler) login(c *gin.Context) {
	var input LoginRequest
	log := h.log(c, "login")
	if !h.bindJSON(c, log, &input) {
		return
	}

	user, session, err := h.accounts.Login(c.Request.Context(), models.LoginInput{
		Username:  input.Username,
		Password:  input.Password,
		ClientIP:  c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	})
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	h.setSessionCookie(c, session)
	c.JSON(http.StatusOK, AuthResponse{Message: "Login successful", User: user})
}

// @Summary Log out
// @Tags Accounts
// @Produce json
// @Security SessionAuth
// @Success 200 {object} MessageResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Router /accounts/auth/logout [post]
func (h *Handler) logout(c *gin.Context) {
	log := h.log(c, "logout")
	if err := h.accounts.Logout(c.Request.Context(), sessionFrom(c).Token); err != nil {
		h.respondError(c, log, err)
		return
	}
	h.clearSessionCookie(c)
	c.JSON(http.StatusOK, MessageResponse{Message: "Successfully logged out"})
}

// @Summary Current user
// @Tags Accounts
// @Produce json
// @Security SessionAuth
// @Success 200 {object} models.User
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Router /accounts/users/me [get]
func (h *Handler) me(c *gin.Context) {
	user, err := h.accounts.GetUser(c.Request.Context(), currentUserID(c))
	if err != nil {
		h.respondError(c, h.log(c, "me"), err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// @Summary Get profile
// @Tags Accounts
// @Produce json
// @Security SessionAuth
// @Success 200 {object} models.UserProfile
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Router /accounts/profile [get]
func (h *Handler) getProfile(c *gin.Context) {
	user, err := h.accounts.GetUser(c.Request.Context(), currentUserID(c))
	if err != nil {
		h.respondError(c, h.log(c, "getProfile"), err)
		return
	}
	c.JSON(http.StatusOK, user.Profile)
}

// @Summary Update profile
// @Tags Accounts
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param profile body ProfileRequest true "Profile"
// @Success 200 {object} models.UserProfile
// @Failure 400 {object} ErrorResponse "Validation error"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Router /accounts/profile [put]
func (h *Handler) updateProfile(c *gin.Context) {
	var input ProfileRequest
	log := h.log(c, "updateProfile")
	if !h.bindJSON(c, log, &input) {
		return
	}

	profile, err := h.accounts.UpdateProfile(c.Request.Context(), currentUserID(c), DTOToProfileModel(input))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// @Summary Login history of the current user
// @Tags Accounts
// @Produce json
// @Security SessionAuth
// @Success 200 {array} models.LoginHistory
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Router /accounts/login-history [get]
func (h *Handler) loginHistory(c *gin.Context) {
	history, err := h.accounts.ListLoginHistory(c.Request.Context(), currentUserID(c))
	if err != nil {
		h.respondError(c, h.log(c, "loginHistory"), err)
		return
	}
	c.JSON(http.StatusOK, history)
}
