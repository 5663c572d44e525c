package restapi

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

func (api *RestAPI) SetRoutes(router *httprouter.Router) {
	router.HandlerFunc(http.MethodGet, "/api/dashboard/controls.json", api.controlsHandler)
	router.HandlerFunc(http.MethodGet, "/api/dashboard/time-series.json", api.timeSeriesHandler)
	router.HandlerFunc(http.MethodGet, "/api/dashboard/regression.json", api.regressionHandler)
	router.HandlerFunc(http.MethodGet, "/api/dashboard/delta-map/:source", api.deltaMapHandler)
	router.HandlerFunc(http.MethodGet, "/api/dashboard/charts/time-series.png", api.timeSeriesChartHandler)
	router.HandlerFunc(http.MethodGet, "/api/dashboard/charts/regression.png", api.regressionChartHandler)
	router.HandlerFunc(http.MethodGet, "/api/dashboard/charts/delta-map/:source", api.deltaMapChartHandler)
	router.HandlerFunc(http.MethodGet, "/api/dashboard/export.xlsx", api.exportHandler)
}
