package ui

import (
	"catadmin/internal/catalog"
	"errors"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
)

var (
	errRequired      = errors.New("Required")
	errPrice         = errors.New("Enter a non-zero price")
	errCategoryID    = errors.New("Enter a numeric category id")
	errImageRequired = errors.New("Enter at least one image URL")
)

func ValidateRequired(s string) error {
	if strings.TrimSpace(s) == "" {
		return errRequired
	}
	return nil
}

func ValidatePrice(s string) error {
	if _, ok := catalog.ParsePrice(s); !ok {
		return errPrice
	}
	return nil
}

func ValidateCategoryID(s string) error {
	if _, ok := catalog.ParseCategoryID(s); !ok {
		return errCategoryID
	}
	return nil
}

func ValidateImages(s string) error {
	if len(catalog.ParseImageList(s)) == 0 {
		return errImageRequired
	}
	return nil
}

// NewProductForm binds a huh form to f. Each field is validated as it is
// left; the console validates the whole form again on submit.
func NewProductForm(f *catalog.Form) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&f.Title).
				Validate(ValidateRequired),
			huh.NewInput().
				Title("Price").
				Placeholder("19.99").
				Value(&f.Price).
				Validate(ValidatePrice),
			huh.NewText().
				Title("Description").
				Lines(3).
				Value(&f.Description).
				Validate(ValidateRequired),
			huh.NewInput().
				Title("Category ID").
				Value(&f.CategoryID).
				Validate(ValidateCategoryID),
			huh.NewInput().
				Title("Images").
				Description("Comma separated URLs").
				Value(&f.Images).
				Validate(ValidateImages),
		),
	).WithTheme(ProductTheme())
}

// FormFields lists f for RenderSummary in the order the form asks for
// them, flagging what Form.Input would reject.
func FormFields(f catalog.Form) []Field {
	missing := map[string]bool{}
	var vErr *catalog.ValidationError
	if _, err := f.Input(); errors.As(err, &vErr) {
		for _, name := range vErr.Missing {
			missing[name] = true
		}
	}
	return []Field{
		{Label: "Title", Value: strings.TrimSpace(f.Title), Missing: missing["title"]},
		{Label: "Price", Value: strings.TrimSpace(f.Price), Missing: missing["price"]},
		{Label: "Description", Value: strings.TrimSpace(f.Description), Missing: missing["description"]},
		{Label: "Category ID", Value: strings.TrimSpace(f.CategoryID), Missing: missing["categoryId"]},
		{Label: "Images", Value: strings.Join(catalog.ParseImageList(f.Images), ", "), Missing: missing["images"]},
	}
}

// ProductChecks are the detail lines RenderSuccess prints for p.
func ProductChecks(p catalog.Product) []string {
	checks := []string{"Price $" + catalog.FormatPrice(p.Price)}
	if name := p.CategoryName(); name != "" {
		checks = append(checks, "Category "+name)
	}
	if n := len(p.DisplayImages()); n > 0 {
		checks = append(checks, strconv.Itoa(n)+" image(s)")
	}
	return checks
}
