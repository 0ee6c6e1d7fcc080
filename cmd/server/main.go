package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"musicbase/internal/api"
	"musicbase/internal/config"
	"musicbase/internal/db"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded, continuing with environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	database, err := db.Connect(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "DB init error: %v\n", err)
		os.Exit(1)
	}

	r := api.SetupRouter(database, cfg)
	addr := ":" + cfg.Server.Port
	fmt.Printf("Now listening for requests on %s\n", addr)
	if err := r.Run(addr); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
