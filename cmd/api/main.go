package main

import (
	"log"

	_ "go.uber.org/automaxprocs"

	"github.com/akio-byte/aki-eduro/internal/shared/config"
	"github.com/akio-byte/aki-eduro/internal/shared/server"
)

func main() {
	cfg := config.Load()
	r := server.NewRouter(cfg)

	addr := server.Addr(cfg.Port)
	log.Printf("Starting kiosk API server on %s", addr)

	if err := r.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
