package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Project is a portfolio entry. Featured projects are highlighted on the home page.
// Collection: projects
type Project struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title        string             `bson:"title" json:"title" validate:"required,notblank"`
	Description  string             `bson:"description" json:"description" validate:"required,notblank"`
	ImageURL     string             `bson:"imageUrl" json:"imageUrl" validate:"required,uri"`
	LiveURL      string             `bson:"liveUrl" json:"liveUrl" validate:"required,uri"`
	GithubURL    string             `bson:"githubUrl" json:"githubUrl" validate:"required,uri"`
	Technologies []string           `bson:"technologies" json:"technologies" validate:"required,min=1,dive,notblank"`
	Featured     bool               `bson:"featured" json:"featured"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}
