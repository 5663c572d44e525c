package restapi

import (
	"errors"
	"net/http"

	"github.com/Asselm02/RenewableEnergyDashboard/internal/analysis"
	"github.com/Asselm02/RenewableEnergyDashboard/internal/export"
	"github.com/Asselm02/RenewableEnergyDashboard/internal/utils"
)

// The chart endpoints render the same views as their JSON counterparts,
// as server-side PNGs. The web UI embeds them directly as images.

func (api *RestAPI) timeSeriesChartHandler(w http.ResponseWriter, r *http.Request) {
	selection, fieldErrors := api.parseSelection(r)
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	png, err := export.RenderTimeSeriesChart(api.Views.TimeSeries(selection))
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}
	api.sendPNG(w, r, png)
}

func (api *RestAPI) regressionChartHandler(w http.ResponseWriter, r *http.Request) {
	selection, fieldErrors := api.parseSelection(r)
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	view, err := api.Views.Regression(selection)
	if errors.Is(err, analysis.ErrInsufficientData) {
		api.insufficientDataResponse(w, r)
		return
	}
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	png, err := export.RenderRegressionChart(view)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}
	api.sendPNG(w, r, png)
}

func (api *RestAPI) deltaMapChartHandler(w http.ResponseWriter, r *http.Request) {
	source, err := analysis.ParseSource(utils.ExtractPathParam(r, "source"))
	if err != nil {
		api.sendNotFound(w, r)
		return
	}

	png, err := export.RenderDeltaMapChart(api.Views.DeltaMap(source))
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}
	api.sendPNG(w, r, png)
}

func (api *RestAPI) sendPNG(w http.ResponseWriter, r *http.Request, png []byte) {
	w.Header().Set("Content-Type", "image/png")
	if _, err := w.Write(png); err != nil {
		api.Logger.Error("failed to write chart response", "path", r.URL.Path, "error", err)
	}
}
