package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"transaction-tree/internal/config"
	"transaction-tree/internal/database"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/lib/pq"
)

func main() {
	steps := flag.Int("steps", 1, "number of migrations to roll back with the down command")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: migrate [flags] up|down|status|seed\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.Load()
	if cfg.Database.Driver != config.DriverPostgres {
		log.Fatalf("migrations run against postgres only, DB_DRIVER is %q", cfg.Database.Driver)
	}

	db, err := sql.Open("postgres", cfg.Database.URL())
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	runner := database.NewMigrationRunner(db)

	if err := runner.WaitForDatabase(ctx); err != nil {
		log.Fatalf("Database not ready: %v", err)
	}

	switch command := flag.Arg(0); command {
	case "up":
		err = runner.Up()
	case "down":
		err = runner.Down(*steps)
	case "seed":
		err = runner.LoadSeeds(ctx)
	case "status":
	default:
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("Migration command failed: %v", err)
	}

	version, dirty, err := runner.Status()
	if errors.Is(err, migrate.ErrNilVersion) {
		log.Println("No migrations applied")
		return
	}
	if err != nil {
		log.Fatalf("Failed to read migration status: %v", err)
	}
	log.Printf("Schema version %d (dirty: %t)", version, dirty)
}
