package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bilemo/api/config"
	"github.com/bilemo/api/database/seeders"
	"github.com/bilemo/api/internal/server"
	"github.com/bilemo/api/pkg/cache"
	"github.com/bilemo/api/pkg/collection"
	"github.com/bilemo/api/pkg/database"
	"github.com/bilemo/api/pkg/migration"
	"github.com/bilemo/api/pkg/router"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return server.Start()
	},
}

func bootDB() error {
	if err := config.Load(); err != nil {
		return err
	}
	return database.Connect()
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run all pending migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := bootDB(); err != nil {
			return err
		}
		return migration.New(database.DB).Run()
	},
}

var migrateRollbackCmd = &cobra.Command{
	Use:   "migrate:rollback",
	Short: "Roll back the last migration batch",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := bootDB(); err != nil {
			return err
		}
		return migration.New(database.DB).Rollback()
	},
}

var migrateStatusCmd = &cobra.Command{
	Use:   "migrate:status",
	Short: "Show which migrations have run",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := bootDB(); err != nil {
			return err
		}
		return migration.New(database.DB).Status()
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Fill the database with demo data",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := bootDB(); err != nil {
			return err
		}
		return seeders.RunAll(database.DB)
	},
}

var routeListCmd = &cobra.Command{
	Use:   "route:list",
	Short: "Print every registered route",
	RunE: func(cmd *cobra.Command, args []string) error {
		r := server.NewRouter(cache.NewMemoryStore())

		infos := collection.SortBy(r.Routes(), func(a, b router.RouteInfo) bool {
			if a.Path != b.Path {
				return a.Path < b.Path
			}
			return a.Method < b.Method
		})

		fmt.Printf("%-8s  %-40s  %s\n", "METHOD", "PATH", "NAME")
		fmt.Println(strings.Repeat("-", 80))
		for _, info := range infos {
			fmt.Printf("%-8s  %-40s  %s\n", info.Method, info.Path, info.Name)
		}
		return nil
	},
}
