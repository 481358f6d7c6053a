package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"backend/internal/catalog"
	"backend/internal/ingest"
)

type addPinterestRequest struct {
	BoardID string `json:"board_id"`
	ShoeID  string `json:"shoe_id"`
	Code    string `json:"code"`
	Model   string `json:"model"`
}

/*
POST /add-pinterest-data
- resolves the shoe by shoe_id/code/model, fetches its board's media,
  uploads the images and replaces the shoe's pinterest links
- board_id overrides the shoe's stored pinterestBoardId when given
*/
func AddPinterestData(pipeline *ingest.Pipeline) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /add-pinterest-data"
		defer handlePanic(c, route)

		var req addPinterestRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		// Board fetch plus per-image downloads and uploads; generous budget.
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Minute)
		defer cancel()

		result, err := pipeline.Run(ctx, catalog.Lookup{ID: req.ShoeID, Code: req.Code, Model: req.Model}, req.BoardID)
		if err != nil {
			respondError(c, route, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Pinterest data added/updated successfully",
			"result":  result,
		})
	}
}
