package product

import (
	"fmt"
	"unicode/utf8"
)

const (
	maxNameLength        = 200
	maxDescriptionLength = 1000
)

// Validate checks a fully populated product before it is persisted and
// returns a *ValidationError listing every violation, or nil.
func Validate(p *Product) error {
	var msgs []string
	if p.Name == "" {
		msgs = append(msgs, "Product name is required")
	} else if utf8.RuneCountInString(p.Name) > maxNameLength {
		msgs = append(msgs, fmt.Sprintf("Product name cannot exceed %d characters", maxNameLength))
	}
	if p.Description == "" {
		msgs = append(msgs, "Product description is required")
	} else if utf8.RuneCountInString(p.Description) > maxDescriptionLength {
		msgs = append(msgs, fmt.Sprintf("Description cannot exceed %d characters", maxDescriptionLength))
	}
	if p.Price < 0 {
		msgs = append(msgs, "Price cannot be negative")
	}
	if p.OriginalPrice != nil && *p.OriginalPrice < 0 {
		msgs = append(msgs, "Original price cannot be negative")
	}
	if p.Type == "" {
		msgs = append(msgs, "Product type is required")
	} else if !IsValidType(p.Type) {
		msgs = append(msgs, fmt.Sprintf("%q is not a valid product type", p.Type))
	}
	if p.Brand == "" {
		msgs = append(msgs, "Brand is required")
	} else if !IsValidBrand(p.Brand) {
		msgs = append(msgs, fmt.Sprintf("%q is not a valid brand", p.Brand))
	}
	if p.ImageURL == "" {
		msgs = append(msgs, "Image URL is required")
	}
	if p.Stock < 0 {
		msgs = append(msgs, "Stock cannot be negative")
	}
	if p.Rating < 0 {
		msgs = append(msgs, "Rating cannot be less than 0")
	} else if p.Rating > 5 {
		msgs = append(msgs, "Rating cannot be more than 5")
	}
	if len(msgs) > 0 {
		return &ValidationError{Messages: msgs}
	}
	return nil
}

// ValidateUpdate checks only the fields an admin edit supplies.
func ValidateUpdate(u Update) error {
	var msgs []string
	if u.Name != nil {
		if *u.Name == "" {
			msgs = append(msgs, "Product name is required")
		} else if utf8.RuneCountInString(*u.Name) > maxNameLength {
			msgs = append(msgs, fmt.Sprintf("Product name cannot exceed %d characters", maxNameLength))
		}
	}
	if u.Description != nil {
		if *u.Description == "" {
			msgs = append(msgs, "Product description is required")
		} else if utf8.RuneCountInString(*u.Description) > maxDescriptionLength {
			msgs = append(msgs, fmt.Sprintf("Description cannot exceed %d characters", maxDescriptionLength))
		}
	}
	if u.Price != nil && *u.Price < 0 {
		msgs = append(msgs, "Price cannot be negative")
	}
	if u.OriginalPrice != nil && *u.OriginalPrice < 0 {
		msgs = append(msgs, "Original price cannot be negative")
	}
	if u.Type != nil && !IsValidType(*u.Type) {
		msgs = append(msgs, fmt.Sprintf("%q is not a valid product type", *u.Type))
	}
	if u.Brand != nil && !IsValidBrand(*u.Brand) {
		msgs = append(msgs, fmt.Sprintf("%q is not a valid brand", *u.Brand))
	}
	if u.ImageURL != nil && *u.ImageURL == "" {
		msgs = append(msgs, "Image URL is required")
	}
	if u.Stock != nil && *u.Stock < 0 {
		msgs = append(msgs, "Stock cannot be negative")
	}
	if u.Rating != nil {
		if *u.Rating < 0 {
			msgs = append(msgs, "Rating cannot be less than 0")
		} else if *u.Rating > 5 {
			msgs = append(msgs, "Rating cannot be more than 5")
		}
	}
	if len(msgs) > 0 {
		return &ValidationError{Messages: msgs}
	}
	return nil
}
