package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/JpabloRR1/API-BUSQUEDA-EMPLEO/internal/interface/http"
)

// AuthModule serves the session lifecycle.
// Public: POST /api/register, POST /api/login, POST /api/logout
// Protected: GET /api/me
type AuthModule struct {
	Handler *handlers.AuthHandler
	Session gin.HandlerFunc
}

func NewAuthModule(h *handlers.AuthHandler, session gin.HandlerFunc) *AuthModule {
	return &AuthModule{Handler: h, Session: session}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	rg.POST("/register", m.Handler.Register)
	rg.POST("/login", m.Handler.Login)
	// logout succeeds without a session, so it sits outside the guard
	rg.POST("/logout", m.Handler.Logout)

	auth := rg.Group("/")
	auth.Use(m.Session)
	{
		auth.GET("/me", m.Handler.Me)
	}
}
