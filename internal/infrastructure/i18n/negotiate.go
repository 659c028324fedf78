package i18n

import "golang.org/x/text/language"

// Normalize maps a raw language code ("hi", "hi-IN", "HI") to a supported
// short code. Unsupported, malformed or empty codes resolve to English and
// report false.
func (t *Translator) Normalize(code string) (string, bool) {
	if code == "" {
		return DefaultLocale, false
	}
	tag, err := language.Parse(code)
	if err != nil {
		return DefaultLocale, false
	}
	base, conf := tag.Base()
	if conf == language.No {
		return DefaultLocale, false
	}
	for _, loc := range supported {
		supportedBase, _ := loc.tag.Base()
		if base == supportedBase {
			return loc.code, true
		}
	}
	return DefaultLocale, false
}

// Negotiate resolves the effective request language.
// Precedence: explicit override (query parameter), then the Accept-Language
// header, then the default. A present but unusable override resolves to the
// default; it does not fall through to the header.
func (t *Translator) Negotiate(override, acceptLanguage string) string {
	if override != "" {
		code, _ := t.Normalize(override)
		return code
	}
	if acceptLanguage != "" {
		if tags, _, err := language.ParseAcceptLanguage(acceptLanguage); err == nil && len(tags) > 0 {
			_, idx, _ := t.matcher.Match(tags...)
			return supported[idx].code
		}
	}
	return DefaultLocale
}
