package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/accrisk/pkg/automation"
	"github.com/doodlesbykumbi/accrisk/pkg/config"
	"github.com/doodlesbykumbi/accrisk/pkg/server"
	"github.com/doodlesbykumbi/accrisk/pkg/server/endpoints"
	gormstore "github.com/doodlesbykumbi/accrisk/pkg/server/store/gorm"
)

func defaultBindAddress() string {
	if addr := os.Getenv("BIND_ADDRESS"); addr != "" {
		return addr
	}
	return "0.0.0.0"
}

func defaultPort() string {
	if port := os.Getenv("PORT"); port != "" {
		return port
	}
	return "8000"
}

func defaultPortInt() int {
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			return p
		}
	}
	return 8000
}

// serverCmd represents the server command
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Run the account risk review API",
	Long: `Run the account risk review API.

The server requires DATABASE_URL and ACCRISK_JWT_SECRET. Every route except
"/" and "/metrics" expects an "Authorization: Bearer <token>" header; mint
tokens with "accriskctl token issue".

By default, database migrations are run on startup. Use --no-migrate to skip.
SIGHUP reloads the configuration file.`,
	Run: func(cmd *cobra.Command, args []string) {
		if os.Getenv("DATABASE_URL") == "" {
			fmt.Fprintln(os.Stderr, "DATABASE_URL environment variable is required")
			os.Exit(1)
		}

		cfg, err := loadConfig()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		if cfg.JWTSecret == "" {
			fmt.Fprintln(os.Stderr, "ACCRISK_JWT_SECRET (or jwt_secret in accrisk.yml) is required")
			os.Exit(1)
		}

		noMigrate, _ := cmd.Flags().GetBool("no-migrate")
		if !noMigrate {
			log.Println("Running database migrations...")
			if err := runMigrations(); err != nil {
				fmt.Fprintf(os.Stderr, "Migration failed: %v\n", err)
				os.Exit(1)
			}
		}

		database, err := connect()
		if err != nil {
			fmt.Println("Unable to connect to DB:", err)
			os.Exit(1)
		}

		task := automation.NewCommandTask(cfg.CheckTaskName, cfg.CheckTaskCommand, 0)
		stores := server.Stores{
			Risks:       gormstore.NewRisksStore(database, cfg.OrgID, cfg.BulkBatchSize),
			Automations: gormstore.NewAutomationsStore(database, cfg.OrgID),
			Health:      gormstore.NewHealthStore(database),
		}

		host, _ := cmd.Flags().GetString("bind-address")
		port, _ := cmd.Flags().GetString("port")
		s := server.NewServer(cfg, stores, automation.NewScheduler(task), host, port)
		endpoints.RegisterAll(s)

		go handleSignals(s)

		log.Printf("Running server at http://%s:%s (org %s)...\n", host, port, cfg.OrgID)
		if err := s.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	},
}

// handleSignals reloads configuration on SIGHUP and shuts down on SIGINT/SIGTERM.
// See server.Reload for the settings a reload applies.
func handleSignals(s *server.Server) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM)

	for sig := range sigChan {
		if sig == syscall.SIGHUP {
			if err := config.Reload(); err != nil {
				log.Printf("Configuration reload failed: %v", err)
				continue
			}
			cfg := config.Get()
			if err := s.Reload(cfg); err != nil {
				log.Printf("Configuration reload rejected: %v", err)
				continue
			}
			log.Printf("Configuration reloaded from %s", cfg.ConfigFilePath())
			continue
		}

		log.Println("Shutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := s.Shutdown(ctx); err != nil {
			log.Printf("Shutdown: %v", err)
		}
		cancel()
		return
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)

	serverCmd.Flags().StringP("port", "p", defaultPort(), "server listen port")
	serverCmd.Flags().StringP("bind-address", "b", defaultBindAddress(), "server bind address")
	serverCmd.Flags().Bool("no-migrate", false, "skip running database migrations on start")
}
