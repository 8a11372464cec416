package proptest

import (
	"catadmin/internal/catalog"
	"strconv"

	"pgregory.net/rapid"
)

var (
	// Titles come from a tiny alphabet so that filters hit and sort keys tie.
	titleGen      = rapid.StringMatching(`[abcAB ]{1,6}`)
	termGen       = rapid.StringMatching(`[abAB]{0,2}`)
	descGen       = rapid.StringMatching(`[a-z ]{0,12}`)
	categoryGen   = rapid.SampledFrom([]string{"Clothes", "electronics", "Furniture", "shoes"})
	priceGen      = rapid.SampledFrom([]float64{1, 9.99, 10, 25.5, 100})
	csvTextGen    = rapid.StringMatching(`[a-zA-Z0-9 ,;"\n]{0,16}`)
	imageURLGen   = rapid.StringMatching(`https://img\.example/[a-z]{1,6}\.png`)
	sortFieldGen  = rapid.SampledFrom(catalog.SortFields)
	perPageGen    = rapid.SampledFrom(catalog.PerPageChoices)
)

const (
	minProducts     = 0
	maxProducts     = 40
	typicalMinCount = 1
	typicalMaxCount = 25
)

func categoryPtrGen() *rapid.Generator[*catalog.Category] {
	return rapid.Custom(func(t *rapid.T) *catalog.Category {
		if rapid.Bool().Draw(t, "noCategory") {
			return nil
		}
		name := categoryGen.Draw(t, "category")
		return &catalog.Category{ID: len(name), Name: name}
	})
}

// GenProduct draws a product with the given id.
func GenProduct(t *rapid.T, id int) catalog.Product {
	return catalog.Product{
		ID:          id,
		Title:       titleGen.Draw(t, "title"),
		Price:       priceGen.Draw(t, "price"),
		Description: descGen.Draw(t, "description"),
		Category:    categoryPtrGen().Draw(t, "category"),
		Images:      rapid.SliceOfN(imageURLGen, 0, 3).Draw(t, "images"),
	}
}

// GenProducts draws between minCount and maxCount products with distinct
// ids in shuffled order.
func GenProducts(t *rapid.T, minCount, maxCount int) []catalog.Product {
	n := rapid.IntRange(minCount, maxCount).Draw(t, "numProducts")
	ids := rapid.Permutation(seqIDs(n)).Draw(t, "ids")
	products := make([]catalog.Product, n)
	for i, id := range ids {
		products[i] = GenProduct(t, id)
	}
	return products
}

func seqIDs(n int) []int {
	ids := make([]int, n)
	for i := range ids {
		ids[i] = i + 1
	}
	return ids
}

func sortStateGen() *rapid.Generator[catalog.SortState] {
	return rapid.Custom(func(t *rapid.T) catalog.SortState {
		if rapid.Bool().Draw(t, "unsorted") {
			return catalog.SortState{}
		}
		return catalog.SortState{
			Field:      sortFieldGen.Draw(t, "field"),
			Descending: rapid.Bool().Draw(t, "desc"),
		}
	})
}

// validFormGen draws forms that pass validation.
func validFormGen() *rapid.Generator[catalog.Form] {
	return rapid.Custom(func(t *rapid.T) catalog.Form {
		return catalog.Form{
			Title:       rapid.StringMatching(`[abcAB][abcAB ]{0,5}`).Draw(t, "title"),
			Price:       catalog.FormatPrice(priceGen.Draw(t, "price")),
			Description: rapid.StringMatching(`[a-z]{1,10}`).Draw(t, "description"),
			CategoryID:  strconv.Itoa(rapid.IntRange(1, 5).Draw(t, "categoryID")),
			Images:      imageURLGen.Draw(t, "image"),
		}
	})
}

// formGen mixes valid forms with ones missing a field.
func formGen() *rapid.Generator[catalog.Form] {
	return rapid.Custom(func(t *rapid.T) catalog.Form {
		f := validFormGen().Draw(t, "form")
		switch rapid.IntRange(0, 5).Draw(t, "blank") {
		case 1:
			f.Title = "  "
		case 2:
			f.Price = "0"
		case 3:
			f.Images = ""
		}
		return f
	})
}

// csvProductGen draws products whose text fields need escaping.
func csvProductGen() *rapid.Generator[catalog.Product] {
	return rapid.Custom(func(t *rapid.T) catalog.Product {
		p := catalog.Product{
			ID:          rapid.IntRange(1, 1000).Draw(t, "id"),
			Title:       csvTextGen.Draw(t, "title"),
			Price:       priceGen.Draw(t, "price"),
			Description: csvTextGen.Draw(t, "description"),
			Images:      rapid.SliceOfN(imageURLGen, 0, 3).Draw(t, "images"),
		}
		if rapid.Bool().Draw(t, "hasCategory") {
			p.Category = &catalog.Category{ID: 1, Name: csvTextGen.Draw(t, "category")}
		}
		return p
	})
}
