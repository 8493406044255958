package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Collection struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Slug        string        `bson:"slug" json:"slug"`
	Name        string        `bson:"name" json:"name"`
	Description string        `bson:"description,omitempty" json:"description,omitempty"`
	Featured    bool          `bson:"featured" json:"featured"`
	Order       int           `bson:"order" json:"order"`
}

// Product is a ready-made frame in the shop catalog. Price is in cents.
type Product struct {
	ID             bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Slug           string        `bson:"slug" json:"slug"`
	Name           string        `bson:"name" json:"name"`
	Description    string        `bson:"description,omitempty" json:"description,omitempty"`
	Price          int64         `bson:"price" json:"price"`
	Images         []string      `bson:"images" json:"images"`
	Sizes          []string      `bson:"sizes" json:"sizes"`
	Materials      string        `bson:"materials,omitempty" json:"materials,omitempty"`
	CollectionSlug string        `bson:"collectionSlug" json:"collectionSlug"`
	InStock        bool          `bson:"inStock" json:"inStock"`
	Featured       bool          `bson:"featured" json:"featured"`
	CreatedAt      time.Time     `bson:"createdAt" json:"createdAt"`
}
