package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/JpabloRR1/API-BUSQUEDA-EMPLEO/internal/domain/entity"
	handlers "github.com/JpabloRR1/API-BUSQUEDA-EMPLEO/internal/interface/http"
	"github.com/JpabloRR1/API-BUSQUEDA-EMPLEO/internal/interface/middleware"
)

// OrganizationModule groups the routes only organization accounts may call.
type OrganizationModule struct {
	Offers  *handlers.OfferHandler
	Matches *handlers.MatchHandler
	Session gin.HandlerFunc
}

func NewOrganizationModule(offers *handlers.OfferHandler, matches *handlers.MatchHandler, session gin.HandlerFunc) *OrganizationModule {
	return &OrganizationModule{Offers: offers, Matches: matches, Session: session}
}

func (m *OrganizationModule) Register(rg *gin.RouterGroup) {
	org := rg.Group("/organization")
	org.Use(m.Session, middleware.RequireRole(entity.RoleOrganization))
	{
		org.GET("/offers", m.Offers.ListOwn)
		org.POST("/offers", m.Offers.Create)
		org.PATCH("/offers/:id", m.Offers.SetActive)
		org.GET("/offers/:id/matches", m.Matches.ForOffer)
		org.PATCH("/matches/:id", m.Matches.Decide)
	}
}
