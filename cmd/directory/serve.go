package main

import (
	"context"
	"fmt"
	"log"

	"github.com/jonathan/london-crypto-directory/internal/relay"
	"github.com/jonathan/london-crypto-directory/internal/server"
	"github.com/spf13/cobra"
)

var (
	servePort       int
	serveStore      string
	serveSQLitePath string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the directory web server",
	Long:  `Start an HTTP server that renders the directory page, exposes the JSON listing and accepts form submissions.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default 8080)")
	serveCmd.Flags().StringVar(&serveStore, "store", "", "Company store driver: memory, sqlite or postgres")
	serveCmd.Flags().StringVar(&serveSQLitePath, "sqlite-path", "", "Path to the sqlite database file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}
	if serveStore != "" {
		cfg.StoreDriver = serveStore
	}
	if serveSQLitePath != "" {
		cfg.SQLitePath = serveSQLitePath
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	st, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}

	relayClient := relay.NewClient(cfg.Relay, nil)
	if missing := cfg.Relay.Missing(); len(missing) > 0 {
		log.Printf("[relay] EmailJS configuration incomplete, forms will fail: %v", missing)
	}
	log.Printf("[relay] EmailJS configuration: %v", cfg.Relay.Present())

	srv, err := server.New(server.Config{
		Port:        cfg.Port,
		Store:       st,
		Relay:       relayClient,
		NotifyEmail: cfg.NotifyEmail,
		SubmitDelay: cfg.SubmitDelay,
		TrustProxy:  cfg.TrustProxy,
	})
	if err != nil {
		_ = st.Close()
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
