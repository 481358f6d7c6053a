package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Shoe struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Code             string             `bson:"code,omitempty" json:"code,omitempty"`
	Model            string             `bson:"model,omitempty" json:"model,omitempty"`
	Title            string             `bson:"title,omitempty" json:"title,omitempty"`
	Description      string             `bson:"description,omitempty" json:"description,omitempty"`
	Colors           ObjectIDList       `bson:"colors,omitempty" json:"colors,omitempty"`
	PinterestBoardID string             `bson:"pinterestBoardId,omitempty" json:"pinterestBoardId,omitempty"`
}
