package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestTranslator(t *testing.T) *Translator {
	t.Helper()
	tr, err := NewTranslator(zap.NewNop())
	require.NoError(t, err)
	return tr
}

func TestNewTranslatorLoadsAllCatalogs(t *testing.T) {
	tr := newTestTranslator(t)
	langs := tr.Languages()
	require.Len(t, langs, 6)
	for _, code := range []string{"en", "hi", "ta", "te", "kn", "ml"} {
		assert.Contains(t, langs, code)
	}
	assert.Equal(t, "English", langs["en"])
	assert.Equal(t, "தமிழ் (Tamil)", langs["ta"])
}

func TestTranslateLocalizedTerms(t *testing.T) {
	tr := newTestTranslator(t)

	assert.Equal(t, "सूर्य", tr.T("hi", "sun", nil))
	assert.Equal(t, "சூரியன்", tr.T("ta", "sun", nil))
	assert.Equal(t, "సూర్యుడు", tr.T("te", "sun", nil))
	assert.Equal(t, "ಸೂರ್ಯ", tr.T("kn", "sun", nil))
	assert.Equal(t, "സൂര്യൻ", tr.T("ml", "sun", nil))
	assert.Equal(t, "Sun", tr.T("en", "sun", nil))
}

func TestTranslateUnsupportedLanguageFallsBackToEnglish(t *testing.T) {
	tr := newTestTranslator(t)

	for _, key := range DeclaredKeys() {
		assert.Equal(t, tr.T("en", key, nil), tr.T("xx", key, nil), "key %s", key)
	}
	assert.Equal(t, "Sun", tr.T("xx", "sun", nil))
	assert.Equal(t, "Aries", tr.T("fr", "aries", nil))
}

func TestTranslatePartialCatalogFallsBackToEnglish(t *testing.T) {
	tr := newTestTranslator(t)

	// internal_error exists only in the English catalog.
	assert.Equal(t, tr.T("en", "internal_error", nil), tr.T("hi", "internal_error", nil))
	assert.Equal(t, tr.T("en", "invalid_timezone", nil), tr.T("ta", "invalid_timezone", nil))
}

func TestTranslateAllSupportedLanguagesNonEmpty(t *testing.T) {
	tr := newTestTranslator(t)

	for code := range tr.Languages() {
		for _, key := range DeclaredKeys() {
			assert.NotEmpty(t, tr.T(code, key, nil), "lang %s key %s", code, key)
		}
	}
}

func TestTranslateTemplateData(t *testing.T) {
	tr := newTestTranslator(t)

	assert.Equal(t, "Chart for Priya", tr.T("en", "chart_for", map[string]any{"name": "Priya"}))
	assert.Equal(t, "Priya की कुंडली", tr.T("hi", "chart_for", map[string]any{"name": "Priya"}))
}

func TestTranslateUnknownKeyReturnsKey(t *testing.T) {
	tr := newTestTranslator(t)
	assert.Equal(t, "no_such_key", tr.T("en", "no_such_key", nil))
	assert.Equal(t, "", tr.T("en", "", nil))
}

func TestCatalogIsTotalPerLanguage(t *testing.T) {
	tr := newTestTranslator(t)

	for _, code := range []string{"en", "hi", "ta", "te", "kn", "ml", "xx"} {
		catalog := tr.Catalog(code)
		require.Len(t, catalog, len(DeclaredKeys()), "lang %s", code)
		for key, value := range catalog {
			assert.NotEmpty(t, value, "lang %s key %s", code, key)
		}
	}

	assert.Equal(t, "சூரியன்", tr.Catalog("ta")["sun"])
	assert.Equal(t, "Chart for {name}", tr.Catalog("en")["chart_for"])
	// Unsupported code dumps the English catalog.
	assert.Equal(t, "Sun", tr.Catalog("xx")["sun"])
}
