package main

import (
	"context"
	"fmt"
	"os"

	postgres_client "github.com/init-pkg/column-mapper/internal/clients/postgres"
	"github.com/init-pkg/column-mapper/internal/config"
	"github.com/init-pkg/column-mapper/migrations"
)

func main() {
	var cfg = config.MustLoad()

	db, err := postgres_client.Open(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer db.Close()

	if err := migrations.Up(context.Background(), db); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Println("Migrations applied, no seeders yet")
}
