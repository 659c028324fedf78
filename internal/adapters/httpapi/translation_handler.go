package httpapi

import "net/http"

// TranslationHandler exposes the language list and the full message
// catalog so clients can render labels without per-term round trips.
type TranslationHandler struct {
	server *Server
}

type languagesResponse struct {
	Default   string            `json:"default"`
	Languages map[string]string `json:"languages"`
}

func (h *TranslationHandler) Languages(w http.ResponseWriter, r *http.Request) {
	h.server.writeJSON(w, http.StatusOK, languagesResponse{
		Default:   "en",
		Languages: h.server.translator.Languages(),
	})
}

type translationsResponse struct {
	Language string            `json:"language"`
	Messages map[string]string `json:"messages"`
}

func (h *TranslationHandler) Translations(w http.ResponseWriter, r *http.Request) {
	lang := requestLanguage(r.Context())
	h.server.writeJSON(w, http.StatusOK, translationsResponse{
		Language: lang,
		Messages: h.server.translator.Catalog(lang),
	})
}
