package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"backend/internal/catalog"
	"backend/internal/ingest"
	"backend/internal/store"
)

func handlePanic(c *gin.Context, route string) {
	if r := recover(); r != nil {
		logrus.WithField("route", route).Errorf("panic recovered: %v", r)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func respondWithError(c *gin.Context, status int, route string, message string) {
	logrus.WithField("route", route).Warnf("returning error %d: %s", status, message)
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}

// respondError maps the failure taxonomy onto HTTP statuses: missing primary
// entity -> 404, missing/malformed identifier -> 400, external-system
// failure -> 500 with the underlying cause, anything else -> 500.
func respondError(c *gin.Context, route string, err error) {
	var upstream *ingest.UpstreamError
	switch {
	case errors.Is(err, store.ErrNotFound):
		respondWithError(c, http.StatusNotFound, route, "not found")
	case errors.Is(err, catalog.ErrBadRequest):
		respondWithError(c, http.StatusBadRequest, route, err.Error())
	case errors.As(err, &upstream):
		logrus.WithField("route", route).WithError(err).Error("upstream failure")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":   "upstream failure",
			"details": upstream.Error(),
		})
	default:
		logrus.WithField("route", route).WithError(err).Error("request failed")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
