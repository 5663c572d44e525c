package webui

import (
	"embed"
	"net/http"
)

//go:embed index.html
var indexFS embed.FS

// indexHandler serves the dashboard page. The page is self-contained:
// it bootstraps its controls from the controls endpoint and embeds the
// rendered charts as images, so it needs no static asset pipeline.
func (webUI *WebUI) indexHandler(w http.ResponseWriter, r *http.Request) {
	page, err := indexFS.ReadFile("index.html")
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(page)
}
