package main

import (
	"bufio"
	"fmt"
	"os"

	"bookclient/internal/api"
	"bookclient/internal/auth"
	"bookclient/internal/config"
	"bookclient/internal/logger"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// app bundles the wired dependencies of one run. All state is in-memory;
// a new run starts from the configured token and a fresh fetch.
type app struct {
	cfg      *config.Config
	log      zerolog.Logger
	session  *auth.Session
	client   *api.Client
	identity *auth.IdentityClient
	scanner  *bufio.Scanner
}

func newApp() (*app, error) {
	cfg := config.Load()
	log := logger.Get(cfg.Debug)

	session := auth.NewSession()
	if cfg.Token != "" {
		if err := session.SetToken(cfg.Token); err != nil {
			// Anonymous endpoints still work; authenticated ones will fail
			// at the backend.
			log.Warn().Msg("configured token could not be decoded, running anonymously")
		}
	}

	return &app{
		cfg:      cfg,
		log:      log,
		session:  session,
		client:   api.New(cfg.APIBaseURL, session, log),
		identity: auth.NewIdentityClient(cfg.APIBaseURL),
		scanner:  bufio.NewScanner(os.Stdin),
	}, nil
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "shelf",
		Short:         "Terminal client for the library catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newLoginCmd(),
		newConfirmCmd(),
		newWhoamiCmd(),
		newBooksCmd(),
		newBookCmd(),
		newListsCmd(),
		newRecommendCmd(),
	)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
