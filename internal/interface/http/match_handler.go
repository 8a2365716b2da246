package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/JpabloRR1/API-BUSQUEDA-EMPLEO/internal/application"
	"github.com/JpabloRR1/API-BUSQUEDA-EMPLEO/internal/domain/compatibility"
	"github.com/JpabloRR1/API-BUSQUEDA-EMPLEO/internal/domain/entity"
	"github.com/JpabloRR1/API-BUSQUEDA-EMPLEO/internal/interface/middleware"
	"github.com/JpabloRR1/API-BUSQUEDA-EMPLEO/pkg/response"
	"github.com/JpabloRR1/API-BUSQUEDA-EMPLEO/pkg/validation"
)

type MatchHandler struct {
	Matching *application.MatchingService
	Logger   *logrus.Logger
}

func NewMatchHandler(svc *application.MatchingService, logger *logrus.Logger) *MatchHandler {
	return &MatchHandler{Matching: svc, Logger: logger}
}

type compatibilityRequest struct {
	CandidateSkills string `json:"candidate_skills" binding:"skills"`
	RequiredSkills  string `json:"required_skills" binding:"skills"`
}

type compatibilityResponse struct {
	Score     float64  `json:"score"`
	Rounded   float64  `json:"rounded"`
	SkillGaps []string `json:"skill_gaps"`
}

type recommendQuery struct {
	Limit int `form:"limit" binding:"gte=0,lte=100"`
}

type decideRequest struct {
	Status string `json:"status" binding:"required,matchstatus"`
}

// Compatibility POST /api/compatibility
func (h *MatchHandler) Compatibility(c *gin.Context) {
	var req compatibilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	score := h.Matching.Score(req.CandidateSkills, req.RequiredSkills)
	response.Success(c, http.StatusOK, compatibilityResponse{
		Score:     score,
		Rounded:   compatibility.Round(score),
		SkillGaps: h.Matching.SkillGaps(req.CandidateSkills, req.RequiredSkills),
	}, "compatibility", nil)
}

// Evaluate GET /api/candidate/offers/:id/compatibility
func (h *MatchHandler) Evaluate(c *gin.Context) {
	u, _ := middleware.CurrentUser(c)
	ev, err := h.Matching.EvaluateOffer(c.Request.Context(), u, c.Param("id"))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, ev, "compatibility", nil)
}

// Recommend GET /api/candidate/recommendations?limit=
func (h *MatchHandler) Recommend(c *gin.Context) {
	var q recommendQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid query", validation.ToDetails(err))
		return
	}
	u, _ := middleware.CurrentUser(c)
	recs, err := h.Matching.Recommend(c.Request.Context(), u, q.Limit)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.List(c, recs, "recommendations")
}

// Apply POST /api/candidate/offers/:id/apply
func (h *MatchHandler) Apply(c *gin.Context) {
	u, _ := middleware.CurrentUser(c)
	m, err := h.Matching.Apply(c.Request.Context(), u, c.Param("id"))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, m, "application recorded", nil)
}

// Mine GET /api/candidate/matches
func (h *MatchHandler) Mine(c *gin.Context) {
	u, _ := middleware.CurrentUser(c)
	out, err := h.Matching.ListCandidateMatches(c.Request.Context(), u)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.List(c, out, "matches")
}

// ForOffer GET /api/organization/offers/:id/matches
func (h *MatchHandler) ForOffer(c *gin.Context) {
	u, _ := middleware.CurrentUser(c)
	out, err := h.Matching.ListOfferMatches(c.Request.Context(), u, c.Param("id"))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.List(c, out, "matches")
}

// Decide PATCH /api/organization/matches/:id
func (h *MatchHandler) Decide(c *gin.Context) {
	var req decideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	u, _ := middleware.CurrentUser(c)
	m, err := h.Matching.Decide(c.Request.Context(), u, c.Param("id"), entity.MatchStatus(req.Status))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, m, "match "+string(m.Status), nil)
}
