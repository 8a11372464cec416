package catalog

import (
	"strconv"
	"strings"
)

const PlaceholderImage = "https://via.placeholder.com/300"

type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Product struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Price       float64   `json:"price"`
	Description string    `json:"description"`
	Category    *Category `json:"category,omitempty"`
	Images      []string  `json:"images"`
}

// ProductInput is the body accepted by create and update.
type ProductInput struct {
	Title       string   `json:"title"`
	Price       float64  `json:"price"`
	Description string   `json:"description"`
	CategoryID  int      `json:"categoryId"`
	Images      []string `json:"images"`
}

var imageJunk = strings.NewReplacer("[", "", "]", "", `"`, "")

// CleanImage strips the bracket and quote debris some API records carry
// around their image URLs.
func CleanImage(s string) string {
	return imageJunk.Replace(s)
}

func (p Product) CategoryName() string {
	if p.Category == nil {
		return ""
	}
	return p.Category.Name
}

func (p Product) DisplayImages() []string {
	images := make([]string, 0, len(p.Images))
	for _, img := range p.Images {
		if img = CleanImage(img); img != "" {
			images = append(images, img)
		}
	}
	return images
}

func (p Product) FirstImage() string {
	if images := p.DisplayImages(); len(images) > 0 {
		return images[0]
	}
	return ""
}

func FormatPrice(price float64) string {
	return strconv.FormatFloat(price, 'f', -1, 64)
}

func (p Product) WithTitle(title string) Product {
	newP := p
	newP.Title = title
	return newP
}

func (p Product) WithImages(images ...string) Product {
	newP := p
	newP.Images = append([]string(nil), images...)
	return newP
}
