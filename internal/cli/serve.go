package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/krail/prototags/internal/server"
	"github.com/krail/prototags/internal/store"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve tag index lookups over a WebSocket endpoint",
	Long: `Expose the persistent tag index over a WebSocket endpoint at /lookup.
Clients send JSON queries {"name": ..., "prefix": true|false} and receive
the matching tags.

Example:
  prototags serve --port 8181`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8181, "port to listen on")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	st, err := store.Open(indexPath(GetRootDir()))
	if err != nil {
		return fmt.Errorf("failed to open tag index: %w", err)
	}
	defer st.Close()

	srv := server.New(servePort, st)
	if err := srv.Start(); err != nil {
		return err
	}

	green := color.New(color.FgGreen, color.Bold).SprintFunc()
	fmt.Printf("%s listening on %s\n", green("SERVING:"), srv.Addr())

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}
