package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/JpabloRR1/API-BUSQUEDA-EMPLEO/internal/interface/http"
)

// OfferModule serves the public offer board and the stateless compatibility
// calculator. Listing a given organization's offers needs a session.
type OfferModule struct {
	Offers  *handlers.OfferHandler
	Matches *handlers.MatchHandler
	Session gin.HandlerFunc
}

func NewOfferModule(offers *handlers.OfferHandler, matches *handlers.MatchHandler, session gin.HandlerFunc) *OfferModule {
	return &OfferModule{Offers: offers, Matches: matches, Session: session}
}

func (m *OfferModule) Register(rg *gin.RouterGroup) {
	rg.GET("/offers", m.Offers.ListActive)
	rg.GET("/offers/search", m.Offers.Search)
	rg.GET("/offers/:id", m.Offers.Get)
	rg.POST("/compatibility", m.Matches.Compatibility)

	auth := rg.Group("/")
	auth.Use(m.Session)
	{
		auth.GET("/organizations/:id/offers", m.Offers.ListByOrganization)
	}
}
