package main

import (
	"flag"
	"log"
	"strings"

	"schoolms/config"
	"schoolms/database"
	"schoolms/middleware"
	"schoolms/router"
)

// @title School Management System API
// @version 1.0
// @description REST API for students, teachers, classes, fees, attendance, exams and school accounts
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
	flag.StringVar(&configFile, "config", "", "external config file path (optional)")
	flag.StringVar(&configFile, "c", "", "external config file path (shorthand)")
	flag.StringVar(&port, "port", "", "listen port, e.g. 8080 or :8080")
	flag.StringVar(&port, "p", "", "listen port (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.BoolVar(&showVersion, "v", false, "print version (shorthand)")
}

func main() {
	flag.Parse()

	if showVersion {
		log.Println("School Management System v1.0.0")
		return
	}

	// Built-in defaults, optionally overridden by an external file
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Command-line port overrides the config
	if port != "" {
		if !strings.HasPrefix(port, ":") {
			port = ":" + port
		}
		cfg.Server.Port = port
		log.Printf("port set from command line: %s", port)
	}

	config.PrintConfig()

	if err := database.Init(cfg); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	middleware.InitJWT(cfg)

	r := router.SetupRouter(cfg)

	log.Printf("==========================================")
	log.Printf("  School Management System started")
	log.Printf("==========================================")
	log.Printf("  Admin page: http://localhost%s/", cfg.Server.Port)
	log.Printf("  Swagger:    http://localhost%s/swagger/index.html", cfg.Server.Port)
	log.Printf("  API:        http://localhost%s/api/v1/", cfg.Server.Port)
	log.Printf("==========================================")

	if err := r.Run(cfg.Server.Port); err != nil {
		log.Fatalf("server failed to start: %v", err)
	}
}
