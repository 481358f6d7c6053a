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
GET /tag-by-address?tagAddress=
- resolves the shoe bound to a physical NFC tag
*/
func GetShoeByTag(agg *catalog.Aggregator) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /tag-by-address"
		defer handlePanic(c, route)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		shoeID, err := agg.ShoeByTagAddress(ctx, c.Query("tagAddress"))
		if err != nil {
			respondError(c, route, err)
			return
		}

		logrus.WithFields(logrus.Fields{"route": route, "shoeId": shoeID}).Info("tag resolved")
		c.JSON(http.StatusOK, gin.H{"shoeId": shoeID})
	}
}
