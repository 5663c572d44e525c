package restapi

import (
	"net/http"

	"github.com/Asselm02/RenewableEnergyDashboard/internal/models"
)

func (api *RestAPI) timeSeriesHandler(w http.ResponseWriter, r *http.Request) {
	selection, fieldErrors := api.parseSelection(r)
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	view := api.Views.TimeSeries(selection)
	api.sendResponse(w, r, models.NewEntryResponse(models.NewTimeSeriesModel(view)))
}
