package main

import (
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/julienschmidt/httprouter"

	"github.com/Asselm02/RenewableEnergyDashboard/internal/analysis"
	"github.com/Asselm02/RenewableEnergyDashboard/internal/app"
	"github.com/Asselm02/RenewableEnergyDashboard/internal/dataset"
	"github.com/Asselm02/RenewableEnergyDashboard/internal/logging"
	"github.com/Asselm02/RenewableEnergyDashboard/internal/restapi"
	"github.com/Asselm02/RenewableEnergyDashboard/internal/webui"
)

func main() {
	var cfg app.Config
	var dataCfg dataset.Config

	flag.IntVar(&cfg.Port, "port", 4000, "Dashboard server port")
	flag.StringVar(&cfg.Env, "env", "development", "Environment (development|staging|production)")
	flag.IntVar(&cfg.RateLimit, "rate-limit", 100, "Requests per second allowed per client IP")
	flag.StringVar(&dataCfg.EnergyDataPath, "energy-data", "data/energy-data.csv", "Path to the energy production CSV")
	flag.StringVar(&dataCfg.CountryCoordsPath, "country-coords", "data/country_coords.csv", "Path to the country coordinates CSV")
	flag.Parse()

	logger := logging.NewStructuredLogger(os.Stdout, slog.LevelInfo)

	loadStart := time.Now()
	manager, err := dataset.InitManager(dataCfg)
	if err != nil {
		logger.Error("failed to load dashboard dataset", "error", err)
		os.Exit(1)
	}
	logging.LogOperation(logger, "dataset_load",
		slog.String("energy_data", dataCfg.EnergyDataPath),
		slog.String("country_coords", dataCfg.CountryCoordsPath),
		slog.Duration("duration", time.Since(loadStart)))
	manager.LogStatistics(logger)

	application := &app.Application{
		Config:     cfg,
		DataConfig: dataCfg,
		Logger:     logger,
		Dataset:    manager,
		Views:      analysis.NewRecomputer(manager.EnergyRecords(), manager.Coordinates()),
	}

	api := restapi.NewRestAPI(application)

	router := httprouter.New()
	api.SetRoutes(router)
	webui.NewWebUI(application).SetWebUIRoutes(router)

	srv := &http.Server{
		Addr:        fmt.Sprintf(":%d", cfg.Port),
		Handler:     api.Handler(router),
		IdleTimeout: time.Minute,
		ReadTimeout: 5 * time.Second,
		// Chart rendering and the xlsx export can take a while on the
		// full dataset
		WriteTimeout: 30 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	logger.Info("starting server", "addr", srv.Addr, "env", cfg.Env)
	err = srv.ListenAndServe()
	logger.Error(err.Error())
	os.Exit(1)
}
