package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/JpabloRR1/API-BUSQUEDA-EMPLEO/internal/domain/entity"
	handlers "github.com/JpabloRR1/API-BUSQUEDA-EMPLEO/internal/interface/http"
	"github.com/JpabloRR1/API-BUSQUEDA-EMPLEO/internal/interface/middleware"
)

type CandidateModule struct {
	Matches *handlers.MatchHandler
	Session gin.HandlerFunc
}

func NewCandidateModule(matches *handlers.MatchHandler, session gin.HandlerFunc) *CandidateModule {
	return &CandidateModule{Matches: matches, Session: session}
}

func (m *CandidateModule) Register(rg *gin.RouterGroup) {
	cand := rg.Group("/candidate")
	cand.Use(m.Session, middleware.RequireRole(entity.RoleCandidate))
	{
		cand.GET("/offers/:id/compatibility", m.Matches.Evaluate)
		cand.POST("/offers/:id/apply", m.Matches.Apply)
		cand.GET("/recommendations", m.Matches.Recommend)
		cand.GET("/matches", m.Matches.Mine)
	}
}
