package catalog

import (
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldAccents descompone y elimina las marcas diacríticas,
// para que "tomaté" y "tomate" coincidan
var foldAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// normalize deja el texto en minúsculas, sin acentos y con
// espacios colapsados
func normalize(s string) string {
	folded, _, err := transform.String(foldAccents, s)
	if err != nil {
		folded = s
	}
	return strings.Join(strings.Fields(strings.ToLower(folded)), " ")
}

// maxDistance es la tolerancia por defecto: una edición permitida
// por cada cuatro caracteres de consulta, mínimo una
func maxDistance(queryLen int) int {
	return 1 + queryLen/4
}

// bestFieldScore retorna el mejor puntaje de la consulta contra los
// campos buscables. Puntaje menor = mejor coincidencia; matched es
// false si ningún campo queda dentro de la tolerancia.
func bestFieldScore(query string, fields []string) (float64, bool) {
	q := normalize(query)
	if q == "" {
		return 0, false
	}

	qRunes := []rune(q)
	limit := maxDistance(len(qRunes))

	best := -1
	for _, field := range fields {
		f := normalize(field)
		if f == "" {
			continue
		}

		d := fieldDistance(q, qRunes, f, limit)
		if d < 0 {
			continue
		}
		if best < 0 || d < best {
			best = d
		}
		if best == 0 {
			break
		}
	}

	if best < 0 {
		return 0, false
	}
	return float64(best) / float64(len(qRunes)), true
}

// fieldDistance calcula la distancia mínima de edición entre la
// consulta y cualquier fragmento del campo: la coincidencia vale en
// cualquier posición, no solo al inicio. Retorna -1 si supera limit.
func fieldDistance(q string, qRunes []rune, field string, limit int) int {
	// Subcadena exacta: coincidencia perfecta
	if strings.Contains(field, q) {
		return 0
	}

	fRunes := []rune(field)
	best := -1

	// Campo completo y cada palabra por separado
	for _, candidate := range append(strings.Fields(field), field) {
		d := levenshtein.ComputeDistance(q, candidate)
		if d <= limit && (best < 0 || d < best) {
			best = d
		}
	}

	// Ventanas deslizantes del ancho de la consulta (±1), para
	// tolerar errores de tipeo dentro de un campo más largo
	for _, width := range []int{len(qRunes) - 1, len(qRunes), len(qRunes) + 1} {
		if width <= 0 || width > len(fRunes) {
			continue
		}
		for i := 0; i+width <= len(fRunes); i++ {
			d := levenshtein.ComputeDistance(q, string(fRunes[i:i+width]))
			if d <= limit && (best < 0 || d < best) {
				best = d
			}
			if best == 0 {
				return 0
			}
		}
	}

	return best
}
