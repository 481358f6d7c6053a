package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"backend/internal/models"
	"backend/internal/store"
)

const documentTimeout = 5 * time.Second

// RegisterDocumentRoutes mounts the generic CRUD routes for one collection.
// One handler set serves every collection; there is no per-collection code.
func RegisterDocumentRoutes(r *gin.Engine, st store.Store, collection string) {
	r.POST("/"+collection, CreateDocument(st, collection))
	r.GET("/"+collection, GetAllDocuments(st, collection))
	r.GET("/"+collection+"/:id", GetDocument(st, collection))
	r.PUT("/"+collection+"/:id", UpdateDocument(st, collection))
	r.DELETE("/"+collection+"/:id", DeleteDocument(st, collection))
}

func CreateDocument(st store.Store, collection string) gin.HandlerFunc {
	return func(c *gin.Context) {
		route := "POST /" + collection
		defer handlePanic(c, route)

		var data map[string]interface{}
		if err := c.ShouldBindJSON(&data); err != nil || len(data) == 0 {
			respondWithError(c, http.StatusBadRequest, route, "no data provided")
			return
		}

		converted, err := convertObjectIDs(data)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, err.Error())
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), documentTimeout)
		defer cancel()

		id, err := st.InsertOne(ctx, collection, converted)
		if err != nil {
			respondError(c, route, err)
			return
		}

		logrus.WithFields(logrus.Fields{"collection": collection, "id": id.Hex()}).Info("document created")
		c.JSON(http.StatusCreated, gin.H{"message": "Document created", "id": id.Hex()})
	}
}

func GetAllDocuments(st store.Store, collection string) gin.HandlerFunc {
	return func(c *gin.Context) {
		route := "GET /" + collection
		defer handlePanic(c, route)

		opts := make([]store.FindOption, 0, 1)
		pageStr := c.Query("page")
		limitStr := c.Query("limit")
		if pageStr != "" && limitStr != "" {
			page, limit, err := parsePaginationParams(pageStr, limitStr)
			if err != nil {
				respondWithError(c, http.StatusBadRequest, route, "invalid pagination params")
				return
			}
			opts = append(opts, store.WithPage((page-1)*limit, limit))
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), documentTimeout)
		defer cancel()

		var docs []bson.M
		if err := st.FindAll(ctx, collection, bson.M{}, &docs, opts...); err != nil {
			respondError(c, route, err)
			return
		}

		rendered := make([]interface{}, 0, len(docs))
		for _, doc := range docs {
			rendered = append(rendered, renderObjectIDs(doc))
		}
		c.JSON(http.StatusOK, rendered)
	}
}

func GetDocument(st store.Store, collection string) gin.HandlerFunc {
	return func(c *gin.Context) {
		route := "GET /" + collection + "/:id"
		defer handlePanic(c, route)

		id, err := models.ParseHex(c.Param("id"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, err.Error())
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), documentTimeout)
		defer cancel()

		var doc bson.M
		if err := st.FindOne(ctx, collection, bson.M{"_id": id}, &doc); err != nil {
			respondError(c, route, err)
			return
		}
		c.JSON(http.StatusOK, renderObjectIDs(doc))
	}
}

func UpdateDocument(st store.Store, collection string) gin.HandlerFunc {
	return func(c *gin.Context) {
		route := "PUT /" + collection + "/:id"
		defer handlePanic(c, route)

		id, err := models.ParseHex(c.Param("id"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, err.Error())
			return
		}

		var data map[string]interface{}
		if err := c.ShouldBindJSON(&data); err != nil || len(data) == 0 {
			respondWithError(c, http.StatusBadRequest, route, "no data provided")
			return
		}

		converted, err := convertObjectIDs(data)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, err.Error())
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), documentTimeout)
		defer cancel()

		result, err := st.UpdateOne(ctx, collection, bson.M{"_id": id}, bson.M{"$set": converted}, false)
		if err != nil {
			respondError(c, route, err)
			return
		}
		if result.MatchedCount == 0 {
			respondWithError(c, http.StatusNotFound, route, "document not found")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Document updated"})
	}
}

func DeleteDocument(st store.Store, collection string) gin.HandlerFunc {
	return func(c *gin.Context) {
		route := "DELETE /" + collection + "/:id"
		defer handlePanic(c, route)

		id, err := models.ParseHex(c.Param("id"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, err.Error())
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), documentTimeout)
		defer cancel()

		deleted, err := st.DeleteOne(ctx, collection, bson.M{"_id": id})
		if err != nil {
			respondError(c, route, err)
			return
		}
		if deleted == 0 {
			respondWithError(c, http.StatusNotFound, route, "document not found")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Document deleted"})
	}
}

// convertObjectIDs converts {"$oid": "..."} values anywhere in the payload
// to native ObjectIds, so clients can post references in extended JSON form.
func convertObjectIDs(value interface{}) (interface{}, error) {
	switch typed := value.(type) {
	case map[string]interface{}:
		if oid, ok := typed["$oid"].(string); ok && len(typed) == 1 {
			id, err := models.ParseHex(oid)
			if err != nil {
				return nil, fmt.Errorf("invalid $oid value %q", oid)
			}
			return id, nil
		}
		converted := bson.M{}
		for key, entry := range typed {
			sub, err := convertObjectIDs(entry)
			if err != nil {
				return nil, err
			}
			converted[key] = sub
		}
		return converted, nil
	case []interface{}:
		converted := make([]interface{}, 0, len(typed))
		for _, entry := range typed {
			sub, err := convertObjectIDs(entry)
			if err != nil {
				return nil, err
			}
			converted = append(converted, sub)
		}
		return converted, nil
	default:
		return value, nil
	}
}

// renderObjectIDs replaces ObjectIds with their hex transport form for JSON
// serialization, recursing into nested documents and arrays.
func renderObjectIDs(value interface{}) interface{} {
	switch typed := value.(type) {
	case primitive.ObjectID:
		return typed.Hex()
	case bson.M:
		rendered := make(map[string]interface{}, len(typed))
		for key, entry := range typed {
			rendered[key] = renderObjectIDs(entry)
		}
		return rendered
	case map[string]interface{}:
		rendered := make(map[string]interface{}, len(typed))
		for key, entry := range typed {
			rendered[key] = renderObjectIDs(entry)
		}
		return rendered
	case bson.A:
		rendered := make([]interface{}, 0, len(typed))
		for _, entry := range typed {
			rendered = append(rendered, renderObjectIDs(entry))
		}
		return rendered
	case []interface{}:
		rendered := make([]interface{}, 0, len(typed))
		for _, entry := range typed {
			rendered = append(rendered, renderObjectIDs(entry))
		}
		return rendered
	default:
		return value
	}
}
