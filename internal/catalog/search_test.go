package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farmchoice-admin/internal/models"
)

func product(name string, position int64, opts ...func(*models.Product)) models.Product {
	p := models.Product{
		Position:    position,
		ShowProduct: true,
		ProductName: models.LocalizedText{Mr: name, En: name},
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

func hidden(p *models.Product)     { p.ShowProduct = false }
func outOfStock(p *models.Product) { p.IsOutOfStock = true }

func withCategory(cat string) func(*models.Product) {
	return func(p *models.Product) {
		p.ProductType = models.LocalizedText{Mr: cat, En: cat}
	}
}

func names(products []models.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ProductName.Mr)
	}
	return out
}

func TestSearchEmptyFiltersReturnsEverythingByPosition(t *testing.T) {
	input := []models.Product{
		product("Neem Oil", 3),
		product("Tomato Seeds", 1),
		product("Cow Manure", 2),
		product("Compost", 1), // misma posición: conserva orden relativo
	}

	result := Search(input, Filters{})

	assert.Equal(t, 4, result.Showing)
	assert.Equal(t, 4, result.Total)
	assert.Equal(t, []string{"Tomato Seeds", "Compost", "Cow Manure", "Neem Oil"}, names(result.Products))
	// La lista original no se muta
	assert.Equal(t, "Neem Oil", input[0].ProductName.Mr)
}

func TestSearchMissingPositionSortsFirst(t *testing.T) {
	input := []models.Product{
		product("Late", 5),
		product("Unset", 0),
	}

	result := Search(input, Filters{})
	assert.Equal(t, []string{"Unset", "Late"}, names(result.Products))
}

func TestVisibilityFilterYieldsExactSubset(t *testing.T) {
	input := []models.Product{
		product("Visible A", 1),
		product("Hidden B", 2, hidden),
		product("Visible C", 3),
		product("Hidden D", 4, hidden),
	}

	visible := Search(input, Filters{Visibility: VisibilityVisible})
	assert.Equal(t, []string{"Visible A", "Visible C"}, names(visible.Products))

	hiddenOnly := Search(input, Filters{Visibility: VisibilityHidden})
	assert.Equal(t, []string{"Hidden B", "Hidden D"}, names(hiddenOnly.Products))

	// Subconjunto y complemento cubren todo
	assert.Equal(t, len(input), visible.Showing+hiddenOnly.Showing)
}

func TestStockFilter(t *testing.T) {
	input := []models.Product{
		product("In Stock", 1),
		product("Sold Out", 2, outOfStock),
	}

	out := Search(input, Filters{Stock: StockOut})
	assert.Equal(t, []string{"Sold Out"}, names(out.Products))

	in := Search(input, Filters{Stock: StockIn})
	assert.Equal(t, []string{"In Stock"}, names(in.Products))
}

func TestCategoryFilterNormalizesCase(t *testing.T) {
	input := []models.Product{
		product("Seeds A", 1, withCategory("Seeds")),
		product("Tools B", 2, withCategory("Tools")),
	}

	result := Search(input, Filters{Category: "  seeds "})
	assert.Equal(t, []string{"Seeds A"}, names(result.Products))
}

func TestQueryExactNameMatches(t *testing.T) {
	input := []models.Product{
		product("Tomato Seeds", 1),
		product("Neem Oil", 2),
	}

	result := Search(input, Filters{Query: "Tomato Seeds"})
	require.NotEmpty(t, result.Products)
	assert.Contains(t, names(result.Products), "Tomato Seeds")
}

func TestQueryToleratesOneCharacterTypo(t *testing.T) {
	input := []models.Product{
		product("Tomato Seeds", 1),
		product("Neem Oil", 2),
	}

	// Una sustitución de carácter
	result := Search(input, Filters{Query: "Tomati Seeds"})
	require.NotEmpty(t, result.Products)
	assert.Contains(t, names(result.Products), "Tomato Seeds")
}

func TestQueryIsCaseAndAccentInsensitive(t *testing.T) {
	input := []models.Product{
		product("Tomaté Seeds", 1),
	}

	result := Search(input, Filters{Query: "TOMATE"})
	assert.Contains(t, names(result.Products), "Tomaté Seeds")
}

func TestQueryMatchesAnywhereInField(t *testing.T) {
	input := []models.Product{
		product("Organic Premium Tomato Seeds", 1),
		product("Neem Oil", 2),
	}

	result := Search(input, Filters{Query: "tomato"})
	assert.Contains(t, names(result.Products), "Organic Premium Tomato Seeds")
	assert.NotContains(t, names(result.Products), "Neem Oil")
}

func TestQuerySearchesVendorCompositionAndVariants(t *testing.T) {
	byVendor := product("P1", 1)
	byVendor.Vendor = "GreenGrow Agro"

	byComposition := product("P2", 2)
	byComposition.ChemicalComposition = []string{"Nitrogen 10%", "Phosphorus 26%"}

	byVariant := product("P3", 3)
	byVariant.MapVariant = []models.Variant{
		{Title: models.LocalizedText{En: "500g pouch"}},
	}

	input := []models.Product{byVendor, byComposition, byVariant}

	assert.Contains(t, names(Search(input, Filters{Query: "greengrow"}).Products), "P1")
	assert.Contains(t, names(Search(input, Filters{Query: "phosphorus"}).Products), "P2")
	assert.Contains(t, names(Search(input, Filters{Query: "pouch"}).Products), "P3")
}

func TestQueryStripsDescriptionTags(t *testing.T) {
	p := product("P1", 1)
	p.ProductDescription = models.LocalizedText{Mr: "<p>excelente <b>fertilizante</b></p>"}

	result := Search([]models.Product{p}, Filters{Query: "fertilizante"})
	assert.Contains(t, names(result.Products), "P1")

	// El nombre de la etiqueta no es buscable
	none := Search([]models.Product{p}, Filters{Query: "xyzzy"})
	assert.Empty(t, none.Products)
}

func TestSearchHandlesMalformedProducts(t *testing.T) {
	// Sin nombre, sin arreglos: no debe fallar
	input := []models.Product{{Position: 1}}

	result := Search(input, Filters{Query: "anything"})
	assert.Empty(t, result.Products)
	assert.Equal(t, 1, result.Total)
}

func TestStripTags(t *testing.T) {
	assert.Equal(t, " hola  mundo  ", stripTags("<p>hola <b>mundo</b></p>"))
	assert.Equal(t, "sin etiquetas", stripTags("sin etiquetas"))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "tomate verde", normalize("  Tomaté   VERDE "))
	assert.Equal(t, "", normalize("   "))
}

func TestParseTriStates(t *testing.T) {
	assert.Equal(t, VisibilityAll, ParseVisibility(""))
	assert.Equal(t, VisibilityVisible, ParseVisibility("Visible"))
	assert.Equal(t, VisibilityHidden, ParseVisibility("hidden"))
	assert.Equal(t, StockAll, ParseStock("whatever"))
	assert.Equal(t, StockOut, ParseStock("out"))
	assert.Equal(t, StockIn, ParseStock("in"))
}
