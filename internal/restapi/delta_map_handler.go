package restapi

import (
	"net/http"

	"github.com/Asselm02/RenewableEnergyDashboard/internal/analysis"
	"github.com/Asselm02/RenewableEnergyDashboard/internal/models"
	"github.com/Asselm02/RenewableEnergyDashboard/internal/utils"
)

// deltaMapHandler serves one source's four-year-delta map. The map is a
// function of the full dataset only, so the handler takes no country or
// year parameters.
func (api *RestAPI) deltaMapHandler(w http.ResponseWriter, r *http.Request) {
	source, err := analysis.ParseSource(utils.ExtractPathParam(r, "source"))
	if err != nil {
		api.sendNotFound(w, r)
		return
	}

	view := api.Views.DeltaMap(source)
	api.sendResponse(w, r, models.NewEntryResponse(models.NewDeltaMapModel(view)))
}
