// Package webui serves the dashboard page itself plus a plain data
// browser for poking at the loaded tables during development. All real
// data access goes through the JSON and chart endpoints; the page here
// is a thin shell around them.
package webui

import (
	"github.com/Asselm02/RenewableEnergyDashboard/internal/app"
)

type WebUI struct {
	*app.Application
}

func NewWebUI(application *app.Application) *WebUI {
	return &WebUI{Application: application}
}
