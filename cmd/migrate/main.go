// Command migrate applies the embedded goose migrations.
//
// Usage:
//
//	migrate [-dsn <postgres-dsn>] <up|down|status|version>
//
// The DSN defaults to the DATABASE_DSN environment variable.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"

	"github.com/avoronov/certprep-backend/migrations"
)

func main() {
	dsnFlag := flag.String("dsn", "", "postgres DSN (default: DATABASE_DSN env)")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: migrate [-dsn <dsn>] <up|down|status|version>")
		os.Exit(1)
	}
	command := flag.Arg(0)

	dsn := *dsnFlag
	if dsn == "" {
		dsn = os.Getenv("DATABASE_DSN")
	}
	if dsn == "" {
		log.Fatal("no DSN: pass -dsn or set DATABASE_DSN")
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		log.Fatalf("goose provider: %v", err)
	}

	ctx := context.Background()

	switch command {
	case "up":
		results, err := provider.Up(ctx)
		if err != nil {
			log.Fatalf("up: %v", err)
		}
		for _, r := range results {
			fmt.Printf("applied %s (%s)\n", r.Source.Path, r.Duration)
		}
	case "down":
		result, err := provider.Down(ctx)
		if err != nil {
			log.Fatalf("down: %v", err)
		}
		fmt.Printf("rolled back %s (%s)\n", result.Source.Path, result.Duration)
	case "status":
		statuses, err := provider.Status(ctx)
		if err != nil {
			log.Fatalf("status: %v", err)
		}
		for _, s := range statuses {
			state := "pending"
			if s.State == goose.StateApplied {
				state = fmt.Sprintf("applied at %s", s.AppliedAt.Format("2006-01-02 15:04:05"))
			}
			fmt.Printf("%-40s %s\n", s.Source.Path, state)
		}
	case "version":
		version, err := provider.GetDBVersion(ctx)
		if err != nil {
			log.Fatalf("version: %v", err)
		}
		fmt.Printf("database version: %d\n", version)
	default:
		log.Fatalf("unknown command %q (want up, down, status, or version)", command)
	}
}
