package catalog

import (
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"backend/internal/models"
)

// Lookup identifies a single shoe by id, manufacturer code or model name.
// The first non-empty field wins, in that priority order.
type Lookup struct {
	ID    string
	Code  string
	Model string
}

// Filter translates the lookup into a shoes-collection filter.
func (l Lookup) Filter() (bson.M, error) {
	switch {
	case strings.TrimSpace(l.ID) != "":
		id, err := models.ParseHex(l.ID)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadRequest, err)
		}
		return bson.M{"_id": id}, nil
	case strings.TrimSpace(l.Code) != "":
		return bson.M{"code": strings.TrimSpace(l.Code)}, nil
	case strings.TrimSpace(l.Model) != "":
		return bson.M{"model": strings.TrimSpace(l.Model)}, nil
	default:
		return nil, fmt.Errorf("%w: provide at least one of id, code or model", ErrBadRequest)
	}
}

// pinterestFilter matches both field revisions of the pinterest collection.
func pinterestFilter(shoeID primitive.ObjectID) bson.M {
	return bson.M{"$or": []bson.M{{"shoeId": shoeID}, {"Shoe": shoeID}}}
}
