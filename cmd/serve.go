package cmd

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"playparse/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the parser over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		addr := cfg.Server.Addr
		if cmd.Flags().Changed("addr") {
			addr = serveAddr
		}

		srv := &http.Server{
			Addr:    addr,
			Handler: server.New(nil, cfg.Workers, os.Stdout),
		}

		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, syscall.SIGTERM, syscall.SIGINT)
		go func() {
			<-sigs
			log.Println("stop signal received")
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			srv.Shutdown(ctx)
		}()

		log.Printf("listening on %v", addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default :8080)")
	rootCmd.AddCommand(serveCmd)
}
