package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/JpabloRR1/API-BUSQUEDA-EMPLEO/internal/application"
	"github.com/JpabloRR1/API-BUSQUEDA-EMPLEO/internal/domain/entity"
	"github.com/JpabloRR1/API-BUSQUEDA-EMPLEO/internal/interface/middleware"
	"github.com/JpabloRR1/API-BUSQUEDA-EMPLEO/pkg/helpers"
	"github.com/JpabloRR1/API-BUSQUEDA-EMPLEO/pkg/response"
	"github.com/JpabloRR1/API-BUSQUEDA-EMPLEO/pkg/validation"
)

type AuthHandler struct {
	Credentials *application.CredentialService
	Sessions    *application.SessionService
	Logger      *logrus.Logger
	Cookies     *helpers.Manager
}

func NewAuthHandler(creds *application.CredentialService, sessions *application.SessionService, logger *logrus.Logger, cookies *helpers.Manager) *AuthHandler {
	return &AuthHandler{Credentials: creds, Sessions: sessions, Logger: logger, Cookies: cookies}
}

type registerRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
	Name     string `json:"name" binding:"required,max=200"`
	Role     string `json:"role" binding:"required,role"`
	Program  string `json:"program" binding:"max=200"`
	Term     int    `json:"term" binding:"gte=0,lte=20"`
	Skills   string `json:"skills" binding:"skills"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	User      userDTO   `json:"user"`
}

// Register POST /api/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	u, err := h.Credentials.Register(c.Request.Context(), application.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Role:     entity.Role(req.Role),
		Program:  req.Program,
		Term:     req.Term,
		Skills:   req.Skills,
	})
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, toUserDTO(u), "registered", nil)
}

// Login POST /api/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	res, err := h.Sessions.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	h.Cookies.SetSession(c, res.Token, res.IssuedAt, res.ExpiresAt)
	response.Success(c, http.StatusOK, loginResponse{
		Token:     res.Token,
		ExpiresAt: res.ExpiresAt,
		User:      toUserDTO(res.User),
	}, "login successful", nil)
}

// Logout POST /api/logout. Always succeeds, with or without a session.
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.Sessions.Logout(c.Request.Context(), middleware.SessionToken(c, h.Cookies.Name)); err != nil {
		writeError(c, h.Logger, err)
		return
	}
	h.Cookies.Clear(c)
	response.Success[any](c, http.StatusOK, gin.H{"logged_out": true}, "logged out", nil)
}

// Me GET /api/me (session required)
func (h *AuthHandler) Me(c *gin.Context) {
	u, ok := middleware.CurrentUser(c)
	if !ok {
		response.Error[any](c, http.StatusUnauthorized, application.ErrNoActiveSession.Error(), nil)
		return
	}
	response.Success(c, http.StatusOK, toUserDTO(u), "current user", nil)
}
