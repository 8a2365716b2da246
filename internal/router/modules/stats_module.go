package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/JpabloRR1/API-BUSQUEDA-EMPLEO/internal/interface/http"
)

type StatsModule struct {
	Handler *handlers.StatsHandler
	Session gin.HandlerFunc
}

func NewStatsModule(h *handlers.StatsHandler, session gin.HandlerFunc) *StatsModule {
	return &StatsModule{Handler: h, Session: session}
}

func (m *StatsModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/stats")
	auth.Use(m.Session)
	{
		auth.GET("/users", m.Handler.Users)
		auth.GET("/offers", m.Handler.Offers)
	}
}
