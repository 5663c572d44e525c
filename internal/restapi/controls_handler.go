package restapi

import (
	"net/http"

	"github.com/Asselm02/RenewableEnergyDashboard/internal/models"
)

func (api *RestAPI) controlsHandler(w http.ResponseWriter, r *http.Request) {
	_, maxYear := api.Dataset.YearBounds()
	controls := models.NewControlsModel(api.Dataset.Countries(), yearSliderMin, maxYear)
	api.sendResponse(w, r, models.NewEntryResponse(controls))
}
