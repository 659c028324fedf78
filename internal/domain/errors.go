package domain

import "errors"

// Domain errors.
var (
	ErrChartNotFound      = errors.New("chart not found")
	ErrInvalidCoordinates = errors.New("latitude or longitude out of range")
	ErrInvalidDatetime    = errors.New("datetime is not valid ISO 8601")
	ErrInvalidTimezone    = errors.New("unknown IANA timezone")
	ErrUnknownLanguage    = errors.New("unsupported language code")
	ErrUnknownMessageKey  = errors.New("unknown translation key")
	ErrCatalogIncomplete  = errors.New("english catalog is missing declared keys")
	ErrInvalidPayload     = errors.New("request body is not valid JSON")
	ErrNameRequired       = errors.New("chart name is required")
	ErrBirthTimeRequired  = errors.New("birth datetime is required")
)

// Stable codes used in HTTP error payloads and as localization keys.
var errorCodes = map[error]string{
	ErrChartNotFound:      "chart_not_found",
	ErrInvalidCoordinates: "invalid_coordinates",
	ErrInvalidDatetime:    "invalid_datetime",
	ErrInvalidTimezone:    "invalid_timezone",
	ErrUnknownLanguage:    "unknown_language",
	ErrUnknownMessageKey:  "unknown_message_key",
	ErrCatalogIncomplete:  "catalog_incomplete",
	ErrInvalidPayload:     "invalid_payload",
	ErrNameRequired:       "name_required",
	ErrBirthTimeRequired:  "birth_time_required",
}

// Code extracts the stable code for a domain error, or "" when err does not
// wrap one.
func Code(err error) string {
	for sentinel, code := range errorCodes {
		if errors.Is(err, sentinel) {
			return code
		}
	}
	return ""
}
