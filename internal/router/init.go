package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/JpabloRR1/API-BUSQUEDA-EMPLEO/internal/container"
	handlers "github.com/JpabloRR1/API-BUSQUEDA-EMPLEO/internal/interface/http"
	"github.com/JpabloRR1/API-BUSQUEDA-EMPLEO/internal/interface/middleware"
	"github.com/JpabloRR1/API-BUSQUEDA-EMPLEO/internal/router/modules"
)

type handlerSet struct {
	Auth    *handlers.AuthHandler
	Offers  *handlers.OfferHandler
	Matches *handlers.MatchHandler
	Stats   *handlers.StatsHandler
}

func buildHandlers(c *container.Container) handlerSet {
	return handlerSet{
		Auth:    handlers.NewAuthHandler(c.Credentials, c.Sessions, c.Logger, c.Cookies),
		Offers:  handlers.NewOfferHandler(c.Directory, c.Logger),
		Matches: handlers.NewMatchHandler(c.Matching, c.Logger),
		Stats:   handlers.NewStatsHandler(c.Stats, c.Logger),
	}
}

// InitModules wires every feature module from the container into the registry.
// Call once during startup, before RegisterAll.
func InitModules(r *Registry, c *container.Container) {
	h := buildHandlers(c)
	session := middleware.Session(c.Sessions, c.Cookies.Name, c.Logger)

	r.Add(modules.NewAuthModule(h.Auth, session))
	r.Add(modules.NewOfferModule(h.Offers, h.Matches, session))
	r.Add(modules.NewOrganizationModule(h.Offers, h.Matches, session))
	r.Add(modules.NewCandidateModule(h.Matches, session))
	r.Add(modules.NewStatsModule(h.Stats, session))
	if c.Config.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}

// New builds the gin engine with global middleware and all API routes.
func New(c *container.Container) *gin.Engine {
	e := gin.New()
	e.Use(gin.Recovery())
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.RealIP())
	if c.Config.HTTPLogEnabled {
		e.Use(middleware.AccessLog(c.Logger))
	}
	if origins := c.Config.CORSOrigins(); len(origins) > 0 {
		e.Use(cors.New(cors.Config{
			AllowOrigins:     origins,
			AllowMethods:     []string{"GET", "POST", "PATCH", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader},
			ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	reg := NewRegistry(e)
	InitModules(reg, c)
	reg.RegisterAll()
	return e
}
