package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"backend/internal/catalog"
)

/*
GET /shoes-with-images
- every shoe with its cover image, natural collection order
*/
func GetShoesWithImages(agg *catalog.Aggregator) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /shoes-with-images"
		defer handlePanic(c, route)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		shoes, err := agg.ShoesWithImages(ctx)
		if err != nil {
			respondError(c, route, err)
			return
		}
		c.JSON(http.StatusOK, shoes)
	}
}

/*
GET /shoes-with-tags?hasTag=
- hasTag=true  -> only shoes with at least one tag
- hasTag=false -> only shoes with none
- unset        -> everything
*/
func GetShoesWithTags(agg *catalog.Aggregator) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /shoes-with-tags"
		defer handlePanic(c, route)

		var hasTag *bool
		if raw := c.Query("hasTag"); raw != "" {
			parsed, err := strconv.ParseBool(raw)
			if err != nil {
				respondWithError(c, http.StatusBadRequest, route, "invalid hasTag value")
				return
			}
			hasTag = &parsed
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		shoes, err := agg.ShoesWithTags(ctx, hasTag)
		if err != nil {
			respondError(c, route, err)
			return
		}
		c.JSON(http.StatusOK, shoes)
	}
}
