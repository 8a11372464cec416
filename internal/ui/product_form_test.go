package ui

import (
	"catadmin/internal/catalog"
	"testing"

	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/assert"
)

func TestFieldValidators(t *testing.T) {
	tests := []struct {
		name     string
		validate func(string) error
		input    string
		wantErr  bool
	}{
		{"required accepts text", ValidateRequired, "Lamp", false},
		{"required rejects blanks", ValidateRequired, "   ", true},
		{"price accepts decimals", ValidatePrice, " 12.50 ", false},
		{"price rejects zero", ValidatePrice, "0", true},
		{"price rejects words", ValidatePrice, "cheap", true},
		{"price rejects NaN", ValidatePrice, "NaN", true},
		{"price rejects infinity", ValidatePrice, "Inf", true},
		{"price rejects negative infinity", ValidatePrice, "-Infinity", true},
		{"price accepts negatives like submit does", ValidatePrice, "-4", false},
		{"category accepts ids", ValidateCategoryID, "3", false},
		{"category rejects zero", ValidateCategoryID, "0", true},
		{"category rejects decimals", ValidateCategoryID, "1.5", true},
		{"images accept a list", ValidateImages, "https://a, https://b", false},
		{"images reject separators only", ValidateImages, " , ,", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.validate(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewProductForm(t *testing.T) {
	f := catalog.Form{Title: "Lamp"}

	form := NewProductForm(&f)

	assert.NotNil(t, form)
	assert.Equal(t, huh.StateNormal, form.State)
}

func TestFormFields(t *testing.T) {
	t.Run("valid form", func(t *testing.T) {
		fields := FormFields(catalog.Form{
			Title: " Lamp ", Price: "12", Description: "desk", CategoryID: "3", Images: "https://a, ,https://b",
		})

		assert.Equal(t, []Field{
			{Label: "Title", Value: "Lamp"},
			{Label: "Price", Value: "12"},
			{Label: "Description", Value: "desk"},
			{Label: "Category ID", Value: "3"},
			{Label: "Images", Value: "https://a, https://b"},
		}, fields)
	})

	t.Run("flags what submit rejects", func(t *testing.T) {
		fields := FormFields(catalog.Form{
			Title: "Lamp", Price: "NaN", Description: " ", CategoryID: "0", Images: "https://a",
		})

		assert.Equal(t, []Field{
			{Label: "Title", Value: "Lamp"},
			{Label: "Price", Value: "NaN", Missing: true},
			{Label: "Description", Value: "", Missing: true},
			{Label: "Category ID", Value: "0", Missing: true},
			{Label: "Images", Value: "https://a"},
		}, fields)
	})
}

func TestProductChecks(t *testing.T) {
	t.Run("full product", func(t *testing.T) {
		p := catalog.Product{Price: 12.5, Category: &catalog.Category{Name: "Home"}, Images: []string{"https://a"}}

		assert.Equal(t, []string{"Price $12.5", "Category Home", "1 image(s)"}, ProductChecks(p))
	})

	t.Run("bare product", func(t *testing.T) {
		assert.Equal(t, []string{"Price $3"}, ProductChecks(catalog.Product{Price: 3}))
	})
}
