package utils

import (
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("search_query", validateSearchQuery)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// validateSearchQuery rejects queries that are only control characters.
// Whitespace-only and empty queries are allowed and simply match nothing.
func validateSearchQuery(fl validator.FieldLevel) bool {
	query := fl.Field().String()
	if !utf8.ValidString(query) {
		return false
	}
	return !strings.ContainsFunc(query, func(r rune) bool {
		return r < 0x20 && r != '\t'
	})
}
