package catalog

import (
	"math"
	"strconv"
	"strings"
)

// ValidationError reports required fields that were empty, zero or
// unparsable. It is raised before any request leaves the process.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Missing, ", ")
}

// Form is the operator-facing shape of a product: every field is text, as
// typed into an input box.
type Form struct {
	Title       string
	Price       string
	Description string
	CategoryID  string
	Images      string
}

func FormFromProduct(p Product) Form {
	f := Form{
		Title:       p.Title,
		Price:       FormatPrice(p.Price),
		Description: p.Description,
		Images:      JoinImageList(p.Images),
	}
	if p.Category != nil {
		f.CategoryID = strconv.Itoa(p.Category.ID)
	}
	return f
}

// Input parses the form. Zero and unparsable numbers count as missing, as do
// blank text fields and an image list with no usable entries.
func (f Form) Input() (ProductInput, error) {
	in := ProductInput{
		Title:       strings.TrimSpace(f.Title),
		Description: strings.TrimSpace(f.Description),
		Images:      ParseImageList(f.Images),
	}

	var missing []string
	if in.Title == "" {
		missing = append(missing, "title")
	}
	if price, ok := ParsePrice(f.Price); ok {
		in.Price = price
	} else {
		missing = append(missing, "price")
	}
	if in.Description == "" {
		missing = append(missing, "description")
	}
	if id, ok := ParseCategoryID(f.CategoryID); ok {
		in.CategoryID = id
	} else {
		missing = append(missing, "categoryId")
	}
	if len(in.Images) == 0 {
		missing = append(missing, "images")
	}

	if len(missing) > 0 {
		return ProductInput{}, &ValidationError{Missing: missing}
	}
	return in, nil
}

// ParsePrice reads a typed price. Zero, NaN, infinities and unparsable
// text report false; negative prices are accepted.
func ParsePrice(s string) (float64, bool) {
	price, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || price == 0 || math.IsNaN(price) || math.IsInf(price, 0) {
		return 0, false
	}
	return price, true
}

// ParseCategoryID reads a typed category id. Zero and non-integers report
// false.
func ParseCategoryID(s string) (int, bool) {
	id, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}

// ParseImageList splits a comma separated list, trimming entries and
// dropping the empty ones.
func ParseImageList(s string) []string {
	var images []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			images = append(images, part)
		}
	}
	return images
}

func JoinImageList(images []string) string {
	cleaned := make([]string, len(images))
	for i, img := range images {
		cleaned[i] = CleanImage(img)
	}
	return strings.Join(cleaned, ", ")
}
