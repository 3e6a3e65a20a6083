package product

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func validProduct() *Product {
	return &Product{
		Name:        "Whey Isolate Vainilla",
		Description: "Proteína aislada de suero.",
		Price:       109990,
		Type:        "Proteína",
		Brand:       "Star Nutrition",
		ImageURL:    "https://example.com/whey.jpg",
		Stock:       7,
		Rating:      4.9,
		IsActive:    true,
	}
}

func TestValidate_OK(t *testing.T) {
	require.NoError(t, Validate(validProduct()))
}

func TestValidate_CollectsEveryViolation(t *testing.T) {
	err := Validate(&Product{
		Price:  -1,
		Rating: 7,
	})
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Contains(t, verr.Messages, "Product name is required")
	require.Contains(t, verr.Messages, "Product description is required")
	require.Contains(t, verr.Messages, "Price cannot be negative")
	require.Contains(t, verr.Messages, "Product type is required")
	require.Contains(t, verr.Messages, "Brand is required")
	require.Contains(t, verr.Messages, "Image URL is required")
	require.Contains(t, verr.Messages, "Rating cannot be more than 5")
}

func TestValidate_FieldLimits(t *testing.T) {
	p := validProduct()
	p.Name = strings.Repeat("a", 201)
	err := Validate(p)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Contains(t, verr.Messages, "Product name cannot exceed 200 characters")

	p = validProduct()
	p.Description = strings.Repeat("b", 1001)
	require.ErrorAs(t, Validate(p), &verr)
	require.Contains(t, verr.Messages, "Description cannot exceed 1000 characters")
}

func TestValidate_EnumMembership(t *testing.T) {
	p := validProduct()
	p.Type = "Gaseosa"
	p.Brand = "Acme"
	err := Validate(p)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Contains(t, verr.Messages, `"Gaseosa" is not a valid product type`)
	require.Contains(t, verr.Messages, `"Acme" is not a valid brand`)
}

func TestValidate_OriginalPriceMayBeBelowPrice(t *testing.T) {
	// No invariant ties originalPrice to price; only negativity is rejected.
	p := validProduct()
	op := 10.0
	p.OriginalPrice = &op
	require.NoError(t, Validate(p))

	neg := -1.0
	p.OriginalPrice = &neg
	require.Error(t, Validate(p))
}

func TestValidateUpdate_OnlyGivenFieldsChecked(t *testing.T) {
	require.NoError(t, ValidateUpdate(Update{}))

	bad := ""
	require.Error(t, ValidateUpdate(Update{Name: &bad}))

	badType := "Gaseosa"
	err := ValidateUpdate(Update{Type: &badType})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, []string{`"Gaseosa" is not a valid product type`}, verr.Messages)

	stock := int64(-1)
	require.Error(t, ValidateUpdate(Update{Stock: &stock}))

	rating := 4.5
	require.NoError(t, ValidateUpdate(Update{Rating: &rating}))
}
