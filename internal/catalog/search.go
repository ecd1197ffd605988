package catalog

import (
	"regexp"
	"sort"
	"strings"

	"farmchoice-admin/internal/models"
)

// Visibility es el filtro de visibilidad de tres estados
type Visibility int

const (
	VisibilityAll Visibility = iota
	VisibilityVisible
	VisibilityHidden
)

// StockFilter es el filtro de stock de tres estados
type StockFilter int

const (
	StockAll StockFilter = iota
	StockOut
	StockIn
)

// ParseVisibility interpreta el query param `visible`
func ParseVisibility(s string) Visibility {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "visible":
		return VisibilityVisible
	case "hidden":
		return VisibilityHidden
	default:
		return VisibilityAll
	}
}

// ParseStock interpreta el query param `stock`
func ParseStock(s string) StockFilter {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "out":
		return StockOut
	case "in":
		return StockIn
	default:
		return StockAll
	}
}

// Filters agrupa los filtros seleccionados en la UI
type Filters struct {
	Query      string
	Category   string
	Visibility Visibility
	Stock      StockFilter
}

// Result es la vista filtrada y ordenada, lista para mostrar
// ("showing N of M")
type Result struct {
	Products []models.Product `json:"products"`
	Showing  int              `json:"showing"`
	Total    int              `json:"total"`
}

var tagRe = regexp.MustCompile(`<[^>]*>`)

// stripTags quita las etiquetas HTML de la descripción
func stripTags(s string) string {
	return tagRe.ReplaceAllString(s, " ")
}

// searchFields retorna los campos donde busca el texto libre:
// nombre, proveedor y categoría en idioma primario, descripción sin
// etiquetas, composición concatenada y títulos de variantes concatenados
func searchFields(p *models.Product) []string {
	var titles []string
	for _, v := range p.MapVariant {
		titles = append(titles, v.Title.Mr, v.Title.En)
	}

	return []string{
		p.ProductName.Mr,
		p.Vendor,
		p.ProductType.Mr,
		stripTags(p.ProductDescription.Mr),
		strings.Join(p.ChemicalComposition, " "),
		strings.Join(titles, " "),
	}
}

// Search aplica búsqueda difusa y filtros sobre el catálogo en memoria
// sin mutar la lista original:
//  1. texto libre → ranking difuso sobre los campos buscables
//  2. categoría (igualdad normalizada)
//  3. visibilidad
//  4. stock
//  5. orden ascendente por posición (estable)
func Search(products []models.Product, f Filters) Result {
	total := len(products)
	working := make([]models.Product, len(products))
	copy(working, products)

	query := strings.TrimSpace(f.Query)
	if query != "" {
		working = rankByQuery(working, query)
	}

	if cat := normalize(f.Category); cat != "" {
		working = keep(working, func(p *models.Product) bool {
			return normalize(p.ProductType.Mr) == cat || normalize(p.ProductType.En) == cat
		})
	}

	if f.Visibility != VisibilityAll {
		want := f.Visibility == VisibilityVisible
		working = keep(working, func(p *models.Product) bool {
			return p.ShowProduct == want
		})
	}

	if f.Stock != StockAll {
		want := f.Stock == StockOut
		working = keep(working, func(p *models.Product) bool {
			return p.IsOutOfStock == want
		})
	}

	sort.SliceStable(working, func(i, j int) bool {
		return working[i].Position < working[j].Position
	})

	return Result{
		Products: working,
		Showing:  len(working),
		Total:    total,
	}
}

// rankByQuery reemplaza la lista de trabajo por los candidatos que
// superan la tolerancia difusa, ordenados por calidad de coincidencia
func rankByQuery(products []models.Product, query string) []models.Product {
	type candidate struct {
		product models.Product
		score   float64
	}

	var candidates []candidate
	for _, p := range products {
		best, matched := bestFieldScore(query, searchFields(&p))
		if matched {
			candidates = append(candidates, candidate{product: p, score: best})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score < candidates[j].score
	})

	ranked := make([]models.Product, 0, len(candidates))
	for _, c := range candidates {
		ranked = append(ranked, c.product)
	}
	return ranked
}

func keep(products []models.Product, pred func(*models.Product) bool) []models.Product {
	out := products[:0]
	for i := range products {
		if pred(&products[i]) {
			out = append(out, products[i])
		}
	}
	return out
}
