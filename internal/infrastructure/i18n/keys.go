package i18n

import "ndastro/internal/domain/entities"

// Chart UI labels.
var labelKeys = []string{
	"birth_chart",
	"planet",
	"sign",
	"house",
	"degree",
	"chart_for",
	"birth_details",
	"date_of_birth",
	"time_of_birth",
	"place_of_birth",
	"latitude",
	"longitude",
	"timezone",
	"date_format",
	"time_format",
}

// User-facing error messages, keyed by domain error code.
var errorKeys = []string{
	"chart_not_found",
	"invalid_coordinates",
	"invalid_datetime",
	"invalid_timezone",
	"unknown_language",
	"invalid_payload",
	"name_required",
	"birth_time_required",
	"internal_error",
}

var declaredKeys = buildDeclaredKeys()

func buildDeclaredKeys() []string {
	var keys []string
	for _, p := range entities.Planets {
		keys = append(keys, p.Key(), p.ShortKey())
	}
	for _, r := range entities.Rasis {
		keys = append(keys, r.Key())
	}
	keys = append(keys, labelKeys...)
	keys = append(keys, errorKeys...)
	for _, loc := range supported {
		keys = append(keys, "language_"+loc.code)
	}
	return keys
}

// DeclaredKeys returns every semantic key the catalogs are expected to
// resolve. The set is fixed at build time; the English catalog must cover
// all of it.
func DeclaredKeys() []string {
	out := make([]string, len(declaredKeys))
	copy(out, declaredKeys)
	return out
}
