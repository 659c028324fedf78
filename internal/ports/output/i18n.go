package output

// Translator exposes the i18n contract for user-facing labels and messages.
// Implementations provide message lookup + templating for a given locale and
// language negotiation over the supported set.
type Translator interface {
	// T renders the message identified by key for the given locale, falling
	// back to the default locale when the key has no translation there.
	// data is an optional map used for template placeholders (may be nil).
	T(locale, key string, data map[string]any) string

	// Normalize maps a raw, possibly malformed language code to a supported
	// one. Unsupported or empty codes resolve to the default locale and
	// report false.
	Normalize(code string) (string, bool)

	// Negotiate resolves the effective request language: the explicit
	// override wins, then the Accept-Language header, then the default.
	Negotiate(override, acceptLanguage string) string

	// Languages returns the supported codes mapped to their native names.
	Languages() map[string]string

	// Catalog returns the full key -> translation mapping for a locale,
	// with default-locale values filling any gaps.
	Catalog(locale string) map[string]string
}
