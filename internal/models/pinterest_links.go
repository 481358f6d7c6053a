package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PinterestLinks stores the durable URLs produced by the ingestion pipeline
// for one shoe. Early revisions wrote the foreign key under "Shoe" instead of
// "shoeId"; both are decoded so legacy documents keep resolving.
type PinterestLinks struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ShoeID     primitive.ObjectID `bson:"shoeId,omitempty" json:"shoeId,omitempty"`
	LegacyShoe primitive.ObjectID `bson:"Shoe,omitempty" json:"-"`
	Links      []string           `bson:"links" json:"links"`
}

// Shoe returns the referenced shoe id regardless of which field revision
// the document was written with.
func (p PinterestLinks) Shoe() primitive.ObjectID {
	if !p.ShoeID.IsZero() {
		return p.ShoeID
	}
	return p.LegacyShoe
}
