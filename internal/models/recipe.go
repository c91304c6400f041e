package models

import "time"

// Recipe is the primary domain record. Field names are stored in Mongo exactly
// as they appear on the wire so client-supplied sort fields address documents
// directly.
type Recipe struct {
	ID          string    `bson:"_id,omitempty" json:"id,omitempty"`
	Name        string    `bson:"name" json:"name"`
	Category    string    `bson:"category" json:"category"`
	Directions  string    `bson:"directions" json:"directions"`
	IsPublished bool      `bson:"isPublished" json:"isPublished"`
	PublishDate time.Time `bson:"publishDate" json:"publishDate"`
	Ingredients []string  `bson:"ingredients" json:"ingredients"`
	ImageURL    string    `bson:"imageUrl" json:"imageUrl"`
}
