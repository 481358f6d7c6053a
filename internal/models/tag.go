package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Tag binds a physical NFC tag address to a shoe for in-store lookup.
// shoeId was written as a plain hex string by some revisions and as an
// ObjectId by others, so it is carried as a HexID and compared in string form.
type Tag struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ShoeID     HexID              `bson:"shoeId" json:"shoeId"`
	TagAddress string             `bson:"tagAddress" json:"tagAddress"`
}
