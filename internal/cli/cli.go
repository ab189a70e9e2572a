package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/signum-network/signum-did-resolver-go/internal/config"
	"github.com/signum-network/signum-did-resolver-go/internal/server"
	"github.com/signum-network/signum-did-resolver-go/pkg/ledger"
	"github.com/signum-network/signum-did-resolver-go/pkg/resolver"
)

var rootCmd = &cobra.Command{
	Use:   "resolverd",
	Short: "HTTP resolver for did:signum identifiers",
	RunE:  run,
}

func Execute() error {
	rootCmd.Flags().BoolP("verbose", "v", false, "increase verbosity")
	viper.BindPFlag("verbose", rootCmd.Flags().Lookup("verbose"))

	return rootCmd.Execute()
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "loading config")
	}

	client, err := ledger.NewClient(ledger.Config{
		Network: cfg.Network,
		BaseURL: cfg.NodeURL,
	})
	if err != nil {
		return errors.Wrap(err, "creating ledger client")
	}

	log := logrus.NewEntry(logrus.StandardLogger())
	srv := server.New(resolver.New(client), log)

	httpServer := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: srv.Router(),
	}

	errCh := make(chan error)
	go func() {
		log.WithFields(logrus.Fields{
			"addr":    cfg.ListenAddr,
			"network": cfg.Network,
			"node":    client.BaseURL(),
		}).Info("resolver listening")
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return errors.Wrap(err, "serving")
	case sig := <-sigCh:
		log.WithField("signal", sig).Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return errors.Wrap(httpServer.Shutdown(shutdownCtx), "shutting down")
}
