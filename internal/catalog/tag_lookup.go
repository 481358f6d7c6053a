package catalog

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"

	"backend/internal/models"
)

// ShoeByTagAddress resolves the shoe bound to a physical tag address.
// Returns the shoe id in transport form; the tag collection may store it as
// either a string or an ObjectId.
func (a *Aggregator) ShoeByTagAddress(ctx context.Context, tagAddress string) (string, error) {
	address := strings.TrimSpace(tagAddress)
	if address == "" {
		return "", fmt.Errorf("%w: tagAddress is required", ErrBadRequest)
	}

	var tag models.Tag
	if err := a.store.FindOne(ctx, tagCollection, bson.M{"tagAddress": address}, &tag); err != nil {
		return "", err
	}
	return tag.ShoeID.String(), nil
}
