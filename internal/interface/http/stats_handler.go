package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/JpabloRR1/API-BUSQUEDA-EMPLEO/internal/application"
	"github.com/JpabloRR1/API-BUSQUEDA-EMPLEO/internal/domain/compatibility"
	"github.com/JpabloRR1/API-BUSQUEDA-EMPLEO/internal/domain/entity"
	"github.com/JpabloRR1/API-BUSQUEDA-EMPLEO/pkg/response"
)

type StatsHandler struct {
	Stats  *application.StatsService
	Logger *logrus.Logger
}

func NewStatsHandler(svc *application.StatsService, logger *logrus.Logger) *StatsHandler {
	return &StatsHandler{Stats: svc, Logger: logger}
}

// Users GET /api/stats/users
func (h *StatsHandler) Users(c *gin.Context) {
	st, err := h.Stats.UserStats(c.Request.Context())
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	pct := make(map[string]float64, len(st.ByProgram))
	for p := range st.ByProgram {
		pct[p] = compatibility.Round(st.ProgramPercentage(p))
	}
	response.Success(c, http.StatusOK, st, "user stats", gin.H{"program_percentage": pct})
}

// Offers GET /api/stats/offers
func (h *StatsHandler) Offers(c *gin.Context) {
	st, err := h.Stats.OfferStats(c.Request.Context())
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	pct := make(map[string]float64, len(st.ByCategory))
	labels := make(map[string]string, 3)
	for cat := range st.ByCategory {
		pct[string(cat)] = compatibility.Round(st.CategoryPercentage(cat))
	}
	for _, cat := range []entity.OfferCategory{entity.CategoryPractice, entity.CategoryJob, entity.CategoryVolunteerService} {
		labels[string(cat)] = cat.Display()
	}
	response.Success(c, http.StatusOK, st, "offer stats", gin.H{"category_percentage": pct, "category_labels": labels})
}
