package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ImageSet holds the ordered image links recorded for one shoe. The first
// link is conventionally the cover image, the second the color swatch view.
type ImageSet struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ShoeID primitive.ObjectID `bson:"shoeId" json:"shoeId"`
	Links  []string           `bson:"links" json:"links"`
}
