package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BlogPost is a markdown article shown on the public blog.
// Collection: blogs
type BlogPost struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title     string             `bson:"title" json:"title" validate:"required,notblank"`
	Content   string             `bson:"content" json:"content" validate:"required,notblank"`
	ImageURL  string             `bson:"imageUrl" json:"imageUrl" validate:"required,uri"`
	Excerpt   string             `bson:"excerpt" json:"excerpt" validate:"required,notblank,max=500"`
	Category  string             `bson:"category" json:"category" validate:"required,notblank"`
	Tags      []string           `bson:"tags" json:"tags" validate:"required,min=1,dive,notblank"`
	Author    string             `bson:"author" json:"author" validate:"required,notblank"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
