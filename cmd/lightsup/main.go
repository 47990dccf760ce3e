package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lightsup/config"
	"lightsup/internal/api"
	"lightsup/internal/auth"
	"lightsup/internal/calculator"
	"lightsup/internal/export"
	"lightsup/internal/notify"
	"lightsup/internal/storage"

	"github.com/spf13/cobra"
)

var configFile string

func main() {
	rootCmd := &cobra.Command{
		Use:   "lightsup",
		Short: "Lightsup Energy site backend",
		Long:  "API server for the Lightsup Energy marketing site: sizing calculators, lead intake, and the content admin panel",
	}

	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file path")

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(seedCmd())
	rootCmd.AddCommand(hashPasswordCmd())
	rootCmd.AddCommand(exportCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func ratesFromConfig(cfg *config.Config) calculator.Rates {
	rates := calculator.Rates{
		GridCostPerKWh:  cfg.Calculator.GridCostPerKWh,
		SystemCostPerKW: cfg.Calculator.SystemCostPerKW,
		OffsetFraction:  cfg.Calculator.OffsetFraction,
		MinSunHours:     cfg.Calculator.MinSunHours,
		MaxSunHours:     cfg.Calculator.MaxSunHours,
	}
	if rates.GridCostPerKWh <= 0 {
		rates = calculator.DefaultRates()
	}
	return rates
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		Long:  "Start the HTTP API, lead notifier, and database",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configFile)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			// Create database
			db, err := storage.NewDatabase(cfg.Database.Path)
			if err != nil {
				return fmt.Errorf("failed to open database: %w", err)
			}
			log.Printf("Database opened at %s", cfg.Database.Path)

			// Create lead notifier
			notifier, err := notify.NewPublisher(notify.PublisherConfig{
				Broker:      cfg.Notifier.Broker,
				ClientID:    cfg.Notifier.ClientID,
				Username:    cfg.Notifier.Username,
				Password:    cfg.Notifier.Password,
				TopicPrefix: cfg.Notifier.TopicPrefix,
				Enabled:     cfg.Notifier.Enabled,
			})
			if err != nil {
				log.Printf("Warning: notifier connection failed: %v", err)
				notifier, _ = notify.NewPublisher(notify.PublisherConfig{Enabled: false})
			} else if cfg.Notifier.Enabled {
				log.Printf("Notifier connected to %s", cfg.Notifier.Broker)
			}

			authManager := auth.NewManager(auth.ManagerConfig{
				AdminEmail:   cfg.Auth.AdminEmail,
				PasswordHash: cfg.Auth.PasswordHash,
				JWTSecret:    cfg.Auth.JWTSecret,
				TokenTTL:     cfg.Auth.TokenTTL,
			})
			if cfg.Auth.AdminEmail == "" {
				log.Println("Warning: admin login not configured; admin API is unreachable")
			}

			server := api.NewServer(api.ServerConfig{
				Port:     cfg.Server.Port,
				Database: db,
				Notifier: notifier,
				Auth:     authManager,
				Rates:    ratesFromConfig(cfg),
			})

			// Handle signals
			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

			go func() {
				if err := server.Start(); err != nil {
					log.Printf("API server error: %v", err)
				}
			}()

			log.Println("Lightsup server started. Press Ctrl+C to stop.")

			<-sigChan
			log.Println("Shutting down...")

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := server.Stop(ctx); err != nil {
				log.Printf("Server shutdown error: %v", err)
			}
			notifier.Close()
			db.Close()

			return nil
		},
	}
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Seed starter content",
		Long:  "Insert the starter blog posts into an empty database",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configFile)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			db, err := storage.NewDatabase(cfg.Database.Path)
			if err != nil {
				return fmt.Errorf("failed to open database: %w", err)
			}
			defer db.Close()

			if err := db.SeedBlogPosts(); err != nil {
				return fmt.Errorf("failed to seed blog posts: %w", err)
			}

			fmt.Println("Seed complete.")
			return nil
		},
	}
}

func hashPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password <password>",
		Short: "Hash an admin password",
		Long:  "Print the bcrypt hash to store under auth.password_hash in the config file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := auth.HashPassword(args[0])
			if err != nil {
				return err
			}
			fmt.Println(hash)
			return nil
		},
	}
}

func exportCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "export [quotes|projects]",
		Short: "Export records to a file",
		Long:  "Write the quote or project list as CSV or PDF to stdout-adjacent files in the working directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configFile)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			db, err := storage.NewDatabase(cfg.Database.Path)
			if err != nil {
				return fmt.Errorf("failed to open database: %w", err)
			}
			defer db.Close()

			var out []byte
			switch args[0] {
			case "quotes":
				quotes, err := db.GetQuotes()
				if err != nil {
					return err
				}
				if format == "pdf" {
					out, err = export.QuotesPDF(quotes, time.Now())
				} else {
					out, err = export.QuotesCSV(quotes)
				}
				if err != nil {
					return err
				}
			case "projects":
				projects, err := db.GetProjects()
				if err != nil {
					return err
				}
				if format == "pdf" {
					out, err = export.ProjectsPDF(projects, time.Now())
				} else {
					out, err = export.ProjectsCSV(projects)
				}
				if err != nil {
					return err
				}
			default:
				return fmt.Errorf("unknown export target %q (want quotes or projects)", args[0])
			}

			filename := fmt.Sprintf("%s_export_%s.%s", args[0], time.Now().Format("2006-01-02"), format)
			if err := os.WriteFile(filename, out, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", filename, err)
			}

			fmt.Printf("Wrote %s\n", filename)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "csv", "output format: csv or pdf")
	return cmd
}
