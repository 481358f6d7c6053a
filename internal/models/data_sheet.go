package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DataSheet carries supplementary descriptive attributes for a shoe.
// Only present in the earlier schema revision; joined by shoeId when found.
type DataSheet struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ShoeID primitive.ObjectID `bson:"shoeId" json:"shoeId"`
	Fields map[string]string  `bson:"fields,omitempty" json:"fields,omitempty"`
}

// StoreRecord locates a shoe inside a physical store.
type StoreRecord struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ShoeID   primitive.ObjectID `bson:"shoeId" json:"shoeId"`
	Location string             `bson:"location,omitempty" json:"location,omitempty"`
}
