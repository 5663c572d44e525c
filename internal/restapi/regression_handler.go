package restapi

import (
	"errors"
	"net/http"

	"github.com/Asselm02/RenewableEnergyDashboard/internal/analysis"
	"github.com/Asselm02/RenewableEnergyDashboard/internal/models"
)

func (api *RestAPI) regressionHandler(w http.ResponseWriter, r *http.Request) {
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

	api.sendResponse(w, r, models.NewEntryResponse(models.NewRegressionModel(view)))
}
