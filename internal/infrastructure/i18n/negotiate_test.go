package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tr := newTestTranslator(t)

	tests := []struct {
		name      string
		in        string
		want      string
		supported bool
	}{
		{"empty", "", "en", false},
		{"exact", "hi", "hi", true},
		{"uppercase", "TA", "ta", true},
		{"with region", "hi-IN", "hi", true},
		{"with region lowercase", "ml-in", "ml", true},
		{"unsupported", "fr", "en", false},
		{"nonsense", "xx", "en", false},
		{"malformed", "not a tag!!", "en", false},
		{"default itself", "en", "en", true},
		{"english region", "en-GB", "en", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tr.Normalize(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.supported, ok)
		})
	}
}

func TestNegotiate(t *testing.T) {
	tr := newTestTranslator(t)

	tests := []struct {
		name     string
		override string
		header   string
		want     string
	}{
		{"nothing", "", "", "en"},
		{"header only", "", "hi", "hi"},
		{"header with quality", "", "ta;q=0.9,en;q=0.8", "ta"},
		{"header regional", "", "te-IN,en;q=0.5", "te"},
		{"header unsupported", "", "fr-FR,de;q=0.7", "en"},
		{"override wins over header", "ta", "hi", "ta"},
		{"override regional", "kn-IN", "hi", "kn"},
		{"invalid override resolves to default", "xx", "hi", "en"},
		{"malformed header", "", ";;;", "en"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tr.Negotiate(tt.override, tt.header))
		})
	}
}
