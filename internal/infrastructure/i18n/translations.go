package i18n

import (
	"embed"
	"fmt"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"ndastro/internal/domain"
	"ndastro/internal/ports/output"
)

//go:embed active.*.toml
var localeFS embed.FS

// DefaultLocale is the fallback language for every lookup.
const DefaultLocale = "en"

// supportedLocale pairs a short code with its x/text tag and native name.
type supportedLocale struct {
	code       string
	tag        language.Tag
	nativeName string
}

// Supported languages in matcher order; English first so it is the
// negotiation fallback.
var supported = []supportedLocale{
	{"en", language.English, "English"},
	{"hi", language.Hindi, "हिन्दी (Hindi)"},
	{"ta", language.Tamil, "தமிழ் (Tamil)"},
	{"te", language.Telugu, "తెలుగు (Telugu)"},
	{"kn", language.Kannada, "ಕನ್ನಡ (Kannada)"},
	{"ml", language.Malayalam, "മലയാളം (Malayalam)"},
}

// Ensure Translator implements the output port.
var _ output.Translator = (*Translator)(nil)

// Translator is a thin wrapper around go-i18n's Bundle/Localizer plus the
// language negotiation rules. It is built once at startup and is safe for
// concurrent use; the underlying catalog is never mutated afterwards.
type Translator struct {
	bundle  *i18n.Bundle
	matcher language.Matcher
	logger  *zap.Logger
}

// NewTranslator builds a Translator backed by go-i18n from the embedded
// active.*.toml catalogs. Every supported language must load, and the
// English catalog must cover every declared key; any gap is a startup error.
func NewTranslator(logger *zap.Logger) (*Translator, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	tags := make([]language.Tag, 0, len(supported))
	for _, loc := range supported {
		file := fmt.Sprintf("active.%s.toml", loc.code)
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			return nil, fmt.Errorf("i18n: load %s: %w", file, err)
		}
		tags = append(tags, loc.tag)
	}

	t := &Translator{
		bundle:  bundle,
		matcher: language.NewMatcher(tags),
		logger:  logger,
	}
	if err := t.validateDefaultCatalog(); err != nil {
		return nil, err
	}
	return t, nil
}

// validateDefaultCatalog checks that the English catalog is total over the
// declared key set so request-time lookups can always degrade to English.
func (t *Translator) validateDefaultCatalog() error {
	localizer := i18n.NewLocalizer(t.bundle, DefaultLocale)
	var missing []string
	for _, key := range DeclaredKeys() {
		// Dummy template data so keys with placeholders render during the check.
		cfg := &i18n.LocalizeConfig{MessageID: key, TemplateData: map[string]any{"name": ""}}
		if _, err := localizer.Localize(cfg); err != nil {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("i18n: %w: %v", domain.ErrCatalogIncomplete, missing)
	}
	return nil
}

// T renders the message identified by key for the given locale.
// If the locale has no translation for the key it falls back to English;
// an entirely unknown key is a caller defect and is returned as-is.
func (t *Translator) T(locale, key string, data map[string]any) string {
	if key == "" {
		return ""
	}

	languages := []string{}
	if locale != "" {
		languages = append(languages, locale)
	}
	languages = append(languages, DefaultLocale)

	localizer := i18n.NewLocalizer(t.bundle, languages...)
	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		t.logger.Error("i18n: localize failed",
			zap.String("key", key),
			zap.Strings("locales", languages),
			zap.Error(err))
		return key
	}
	return msg
}

// Languages returns the supported codes mapped to their native names.
func (t *Translator) Languages() map[string]string {
	out := make(map[string]string, len(supported))
	for _, loc := range supported {
		out[loc.code] = loc.nativeName
	}
	return out
}

// Catalog returns the full key -> translation mapping for a locale, with
// English values filling any gaps in a partial catalog. Placeholders are
// re-emitted in {name} form so clients can substitute them.
func (t *Translator) Catalog(locale string) map[string]string {
	code, _ := t.Normalize(locale)
	data := map[string]any{"name": "{name}"}
	out := make(map[string]string, len(declaredKeys))
	for _, key := range declaredKeys {
		out[key] = t.T(code, key, data)
	}
	return out
}
