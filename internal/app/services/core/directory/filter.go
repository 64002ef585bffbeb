package directory

import (
	"esveikata-finder/internal/app/models"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// diacriticFolder maps the upper-case Lithuanian letters to their plain
// Latin counterparts. Only these nine letters are folded.
var diacriticFolder = strings.NewReplacer(
	"Ą", "A",
	"Č", "C",
	"Ę", "E",
	"Ė", "E",
	"Į", "I",
	"Š", "S",
	"Ų", "U",
	"Ū", "U",
	"Ž", "Z",
)

// NormalizeName upper-cases s under Lithuanian rules and folds diacritics.
func NormalizeName(s string) string {
	return normalize(cases.Upper(language.Lithuanian), s)
}

func normalize(caser cases.Caser, s string) string {
	return diacriticFolder.Replace(caser.String(s))
}

// FilterSpecialists returns the specialists whose full name contains query,
// ignoring case and Lithuanian diacritics. Input order is kept. An empty
// query matches nothing.
func FilterSpecialists(query string, specialists []models.Specialist) []models.Specialist {
	filtered := make([]models.Specialist, 0)
	if query == "" {
		return filtered
	}

	// a Caser carries state and must not be shared between goroutines
	caser := cases.Upper(language.Lithuanian)
	needle := normalize(caser, query)
	for _, specialist := range specialists {
		if strings.Contains(normalize(caser, specialist.FullName), needle) {
			filtered = append(filtered, specialist)
		}
	}
	return filtered
}
