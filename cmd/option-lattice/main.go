package main

import (
	"flag"
	"os"
	"time"

	"github.com/contactkeval/option-lattice/internal/config"
	"github.com/contactkeval/option-lattice/internal/data"
	"github.com/contactkeval/option-lattice/internal/engine"
	"github.com/contactkeval/option-lattice/internal/logger"
	"github.com/contactkeval/option-lattice/internal/report"
	"github.com/contactkeval/option-lattice/internal/server"
)

func main() {
	configPath := flag.String("config", "", "path to scenario config (YAML or JSON); empty runs the built-in default scenario")
	rest := flag.Bool("rest", false, "run as REST server (accept pricing requests)")
	port := flag.String("port", ":8080", "REST server listen address")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Errorf("loading config: %v", err)
		os.Exit(1)
	}
	logger.SetVerbosity(cfg.Verbosity)
	defer logger.Sync()

	// choose provider
	var prov data.Provider
	apiKey := os.Getenv("POLYGON_API_KEY")
	if apiKey != "" {
		prov = data.NewMassiveDataProvider(apiKey)
		logger.Infof("market data provider enabled")
	} else {
		prov = data.NewSyntheticProvider(time.Now().UnixNano())
		logger.Infof("synthetic data provider enabled")
	}

	if *rest {
		if err := server.New(cfg, prov).Run(*port); err != nil {
			logger.Errorf("REST server: %v", err)
			os.Exit(1)
		}
		return
	}

	start := time.Now()
	res, err := engine.New(cfg, prov).Run()
	if err != nil {
		logger.Errorf("pricing failed: %v", err)
		os.Exit(1)
	}

	if err := report.WriteAll(res, cfg.ReportDir); err != nil {
		logger.Errorf("writing reports: %v", err)
		os.Exit(1)
	}
	logger.Infof("finished in %v, value=%.6f reference=%.6f q=%.6f, reports in %s",
		time.Since(start), res.Valuation.Value, res.Reference, res.Valuation.Q, cfg.ReportDir)
}
