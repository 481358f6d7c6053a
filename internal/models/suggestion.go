package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Suggestion lists shoes related to one shoe ("viewed this also viewed").
type Suggestion struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ShoeID primitive.ObjectID `bson:"shoeId" json:"shoeId"`
	Shoes  ObjectIDList       `bson:"shoes" json:"shoes"`
}
