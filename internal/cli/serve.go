package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	sderrors "github.com/sitedeck/sitedeck/pkg/errors"
)

// serveCommand creates the serve command for previewing the built page.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr string
		dir  string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the built output directory over HTTP",
		Long: `Serve the built output directory over HTTP.

This is a local preview server for the page produced by 'build'. It serves
static files only; run 'build' again to pick up changes.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), addr, dir)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "localhost:8080", "listen address")
	cmd.Flags().StringVarP(&dir, "dir", "d", "dist", "directory to serve")

	return cmd
}

// runServe serves dir until ctx is canceled.
func (c *CLI) runServe(ctx context.Context, addr, dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return sderrors.New(sderrors.ErrCodeNotFound, "directory %s does not exist, run '%s build' first", dir, appName)
		}
		return err
	}
	if !info.IsDir() {
		return sderrors.New(sderrors.ErrCodeInvalidInput, "%s is not a directory", dir)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Handle("/*", http.FileServer(http.Dir(filepath.Clean(dir))))

	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	c.Logger.Info("serving", "dir", dir, "addr", addr)
	printSuccess("Serving %s", dir)
	printNextStep("Open", fmt.Sprintf("http://%s/", addr))

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return ctx.Err()
	}
}
