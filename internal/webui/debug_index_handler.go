package webui

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/davecgh/go-spew/spew"
)

//go:embed debug_index.html
var templateFS embed.FS

type debugData struct {
	Title string
	Pre   string
}

func writeDebugData(w http.ResponseWriter, title string, data interface{}) {
	content := spew.Sdump(data)
	w.Header().Set("Content-Type", "text/html")
	tmpl, err := template.ParseFS(templateFS, "debug_index.html")
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dataStruct := debugData{
		Title: title,
		Pre:   content,
	}

	err = tmpl.Execute(w, dataStruct)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// debugIndexHandler dumps a loaded table as readable text. It exists for
// eyeballing the dataset during development, not for the dashboard.
func (webUI *WebUI) debugIndexHandler(w http.ResponseWriter, r *http.Request) {
	dataType := r.URL.Query().Get("dataType")

	var data interface{}
	var title string

	switch dataType {
	case "energy":
		data = webUI.Dataset.EnergyRecords()
		title = "Dashboard Data - Energy Records"
	case "coordinates":
		data = webUI.Dataset.Coordinates()
		title = "Dashboard Data - Country Coordinates"
	case "countries":
		data = webUI.Dataset.Countries()
		title = "Dashboard Data - Countries"
	case "unmatched":
		energyOnly, coordsOnly := webUI.Dataset.UnmatchedCountries()
		data = map[string][]string{
			"energyOnly": energyOnly,
			"coordsOnly": coordsOnly,
		}
		title = "Dashboard Data - Unmatched Countries"
	default:
		data = map[string]string{
			"error": "Please use one of the following: energy, coordinates, countries, unmatched.",
		}
		title = "Choose a data type"
	}

	writeDebugData(w, title, data)
}
