package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/JpabloRR1/API-BUSQUEDA-EMPLEO/internal/application"
	"github.com/JpabloRR1/API-BUSQUEDA-EMPLEO/pkg/helpers"
	"github.com/JpabloRR1/API-BUSQUEDA-EMPLEO/pkg/response"
)

var statusByErr = []struct {
	err    error
	status int
}{
	{application.ErrInvalidCredentials, http.StatusUnauthorized},
	{application.ErrNoActiveSession, http.StatusUnauthorized},
	{application.ErrAlreadyExists, http.StatusConflict},
	{application.ErrRoleMismatch, http.StatusForbidden},
	{application.ErrOfferNotFound, http.StatusNotFound},
	{application.ErrOrganizationNotFound, http.StatusNotFound},
	{application.ErrMatchNotFound, http.StatusNotFound},
	{application.ErrInvalidProfile, http.StatusBadRequest},
	{application.ErrInvalidOffer, http.StatusBadRequest},
	{application.ErrInvalidStatus, http.StatusBadRequest},
	{application.ErrOfferInactive, http.StatusConflict},
}

// writeError maps expected outcomes to their status and message. Anything
// else is logged and reported as a 500.
func writeError(c *gin.Context, logger *logrus.Logger, err error) {
	for _, e := range statusByErr {
		if errors.Is(err, e.err) {
			response.Error[any](c, e.status, e.err.Error(), nil)
			return
		}
	}
	helpers.LogError(logger, "request failed", err, logrus.Fields{
		"request_id": c.GetString("request_id"),
		"path":       c.FullPath(),
	})
	response.Error[any](c, http.StatusInternalServerError, "internal error", nil)
}
