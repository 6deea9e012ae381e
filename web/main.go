package main

import (
	"flag"
	"log"
	"os"

	"github.com/df07/go-pick-raytracer/pkg/config"
	"github.com/df07/go-pick-raytracer/web/server"
)

func main() {
	// Parse command line flags
	port := flag.Int("port", 8080, "Port to serve on")
	configPath := flag.String("config", config.DefaultPath, "YAML config file (missing file = defaults)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Printf("Error loading config: %v", err)
		os.Exit(1)
	}

	// Create and start web server
	webServer := server.NewServer(*port, cfg)

	log.Printf("Pick & Raytrace Web Server")
	log.Printf("Try http://localhost:%d/api/render or /api/pick?u=0.5&v=0.5", *port)

	if err := webServer.Start(); err != nil {
		log.Printf("Error starting server: %v", err)
		os.Exit(1)
	}
}
