package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"backend/internal/catalog"
)

/*
GET /shoe-details?id=|code=|model=
- first non-empty parameter wins, in that order
- missing related documents come back as empty facets, never errors
*/
func GetShoeDetails(agg *catalog.Aggregator) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /shoe-details"
		defer handlePanic(c, route)

		lookup := catalog.Lookup{
			ID:    c.Query("id"),
			Code:  c.Query("code"),
			Model: c.Query("model"),
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		detail, err := agg.Detail(ctx, lookup)
		if err != nil {
			respondError(c, route, err)
			return
		}

		logrus.WithFields(logrus.Fields{"route": route, "shoeId": detail.ID}).Info("detail assembled")
		c.JSON(http.StatusOK, detail)
	}
}

/*
GET /shoe-with-pinterest?id=|code=|model=
- single shoe with its flattened pinterest links
*/
func GetShoeWithPinterest(agg *catalog.Aggregator) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /shoe-with-pinterest"
		defer handlePanic(c, route)

		lookup := catalog.Lookup{
			ID:    c.Query("id"),
			Code:  c.Query("code"),
			Model: c.Query("model"),
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		view, err := agg.Pinterest(ctx, lookup)
		if err != nil {
			respondError(c, route, err)
			return
		}
		c.JSON(http.StatusOK, view)
	}
}
