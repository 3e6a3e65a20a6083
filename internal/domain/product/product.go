package product

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Product struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name          string             `bson:"name" json:"name"`
	Description   string             `bson:"description" json:"description"`
	Price         float64            `bson:"price" json:"price"`
	OriginalPrice *float64           `bson:"originalPrice,omitempty" json:"originalPrice,omitempty"`
	Type          string             `bson:"type" json:"type"`
	Brand         string             `bson:"brand" json:"brand"`
	ImageURL      string             `bson:"imageUrl" json:"imageUrl"`
	Stock         int64              `bson:"stock" json:"stock"`
	Rating        float64            `bson:"rating" json:"rating"`
	IsActive      bool               `bson:"isActive" json:"isActive"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Update carries a partial admin edit; nil fields keep their stored value.
type Update struct {
	Name          *string
	Description   *string
	Price         *float64
	OriginalPrice *float64
	Type          *string
	Brand         *string
	ImageURL      *string
	Stock         *int64
	Rating        *float64
	IsActive      *bool
}

// Types and Brands are the single source of the category and brand
// enumerations, shared by validation and any presentation listing.
var Types = []string{
	"Proteína",
	"Creatina",
	"Pre-entreno",
	"Vitaminas",
	"Quemadores de Grasa",
	"Aminoácidos",
	"Post-entreno",
}

var Brands = []string{
	"Star Nutrition",
	"ENA",
	"Universal Nutrition",
	"Optimum Nutrition",
	"BSN",
	"MuscleTech",
	"Dymatize",
}

func IsValidType(v string) bool {
	for _, t := range Types {
		if t == v {
			return true
		}
	}
	return false
}

func IsValidBrand(v string) bool {
	for _, b := range Brands {
		if b == v {
			return true
		}
	}
	return false
}
