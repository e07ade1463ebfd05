package main

import (
	"flag"
	"log"
	"strings"

	"budget-tracker/config"
	"budget-tracker/database"
	"budget-tracker/middleware"
	"budget-tracker/router"
)

// @title Budget Tracker API
// @version 1.0
// @description Personal budget tracking API: income and expense ledgers, monthly budgets and a computed budget summary.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

var (
	configFile  string
	port        string
	showVersion bool
)

func init() {
	flag.StringVar(&configFile, "config", "", "path to an external config file (optional)")
	flag.StringVar(&configFile, "c", "", "path to an external config file (shorthand)")
	flag.StringVar(&port, "port", "", "listen port, e.g. 8080 or :8080")
	flag.StringVar(&port, "p", "", "listen port (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.BoolVar(&showVersion, "v", false, "print version (shorthand)")
}

func main() {
	flag.Parse()

	if showVersion {
		log.Println("budget-tracker v1.0.0")
		return
	}

	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		log.Fatalf("loading config failed: %v", err)
	}

	// command line port overrides the config
	if port != "" {
		if !strings.HasPrefix(port, ":") {
			port = ":" + port
		}
		cfg.Server.Port = port
		log.Printf("port from command line: %s", port)
	}

	config.PrintConfig()

	if err := database.Init(cfg); err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	middleware.InitAuth(cfg)

	r := router.SetupRouter(cfg)

	log.Printf("budget tracker listening on %s", cfg.Server.Port)
	log.Printf("swagger: %s/swagger/index.html", cfg.Server.BaseURL)

	if err := r.Run(cfg.Server.Port); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
