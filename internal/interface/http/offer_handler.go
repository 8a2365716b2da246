package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/JpabloRR1/API-BUSQUEDA-EMPLEO/internal/application"
	"github.com/JpabloRR1/API-BUSQUEDA-EMPLEO/internal/domain/entity"
	"github.com/JpabloRR1/API-BUSQUEDA-EMPLEO/internal/interface/middleware"
	"github.com/JpabloRR1/API-BUSQUEDA-EMPLEO/pkg/response"
	"github.com/JpabloRR1/API-BUSQUEDA-EMPLEO/pkg/validation"
)

type OfferHandler struct {
	Directory *application.DirectoryService
	Logger    *logrus.Logger
}

func NewOfferHandler(dir *application.DirectoryService, logger *logrus.Logger) *OfferHandler {
	return &OfferHandler{Directory: dir, Logger: logger}
}

type createOfferRequest struct {
	Title          string `json:"title" binding:"required,max=200"`
	Description    string `json:"description" binding:"max=5000"`
	Category       string `json:"category" binding:"required,offercategory"`
	RequiredSkills string `json:"required_skills" binding:"skills"`
	Location       string `json:"location" binding:"max=200"`
}

type setActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}

type searchQuery struct {
	Q    string `form:"q" binding:"required"`
	Size int    `form:"size" binding:"gte=0"`
}

// ListActive GET /api/offers
func (h *OfferHandler) ListActive(c *gin.Context) {
	offers, err := h.Directory.ListActiveOffers(c.Request.Context())
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.List(c, toListingDTOs(offers), "active offers")
}

// Search GET /api/offers/search?q=&size=
func (h *OfferHandler) Search(c *gin.Context) {
	var q searchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid query", validation.ToDetails(err))
		return
	}
	offers, err := h.Directory.SearchOffers(c.Request.Context(), q.Q, q.Size)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.List(c, toListingDTOs(offers), "search results")
}

// Get GET /api/offers/:id
func (h *OfferHandler) Get(c *gin.Context) {
	o, err := h.Directory.GetOffer(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, offerDTO{Offer: *o, CategoryLabel: o.Category.Display()}, "offer", nil)
}

// ListByOrganization GET /api/organizations/:id/offers
func (h *OfferHandler) ListByOrganization(c *gin.Context) {
	org, err := h.Directory.GetOrganization(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	h.listOwned(c, org.ID)
}

// ListOwn GET /api/organization/offers
func (h *OfferHandler) ListOwn(c *gin.Context) {
	u, _ := middleware.CurrentUser(c)
	h.listOwned(c, u.ID)
}

func (h *OfferHandler) listOwned(c *gin.Context, organizationID string) {
	offers, err := h.Directory.ListOffersByOrganization(c.Request.Context(), organizationID)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.List(c, toOfferDTOs(offers), "organization offers")
}

// Create POST /api/organization/offers
func (h *OfferHandler) Create(c *gin.Context) {
	var req createOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	u, _ := middleware.CurrentUser(c)
	o, err := h.Directory.CreateOffer(c.Request.Context(), u.ID, application.OfferInput{
		Title:          req.Title,
		Description:    req.Description,
		Category:       entity.OfferCategory(req.Category),
		RequiredSkills: req.RequiredSkills,
		Location:       req.Location,
	})
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, offerDTO{Offer: *o, CategoryLabel: o.Category.Display()}, "offer created", nil)
}

// SetActive PATCH /api/organization/offers/:id
func (h *OfferHandler) SetActive(c *gin.Context) {
	var req setActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	u, _ := middleware.CurrentUser(c)
	o, err := h.Directory.SetOfferActive(c.Request.Context(), u.ID, c.Param("id"), *req.Active)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, offerDTO{Offer: *o, CategoryLabel: o.Category.Display()}, "offer updated", nil)
}
