package restapi

import (
	"errors"
	"net/http"

	"github.com/Asselm02/RenewableEnergyDashboard/internal/analysis"
	"github.com/Asselm02/RenewableEnergyDashboard/internal/export"
)

// exportHandler streams every dashboard view for the current selection
// as one xlsx workbook: the time series, the regression table, and the
// four delta maps. The maps ignore the selection, like their endpoints.
func (api *RestAPI) exportHandler(w http.ResponseWriter, r *http.Request) {
	selection, fieldErrors := api.parseSelection(r)
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	book := export.Workbook{
		Series: api.Views.TimeSeries(selection),
	}

	fit, err := api.Views.Regression(selection)
	if err != nil && !errors.Is(err, analysis.ErrInsufficientData) {
		api.serverErrorResponse(w, r, err)
		return
	}
	book.Fit = fit
	book.HasFit = err == nil

	for _, source := range analysis.Sources() {
		book.Maps = append(book.Maps, api.Views.DeltaMap(source))
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="renewable-energy-dashboard.xlsx"`)
	if err := export.WriteWorkbook(w, api.Logger, book); err != nil {
		api.Logger.Error("failed to write workbook response", "path", r.URL.Path, "error", err)
	}
}
