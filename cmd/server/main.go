package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/rainyday/internal/buildinfo"
	"github.com/dmitrijs2005/rainyday/internal/server"
	"github.com/dmitrijs2005/rainyday/internal/server/config"
)

func main() {
	buildinfo.Print(os.Stdout)

	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx := context.Background()
	app, err := server.NewApp(ctx, cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer app.Close()

	app.Run(ctx)
}
