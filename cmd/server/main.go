package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/jrsteele09/go-oauth-compliance/compliance"
	"github.com/jrsteele09/go-oauth-compliance/exchange"
	"github.com/jrsteele09/go-oauth-compliance/internal/config"
	"github.com/jrsteele09/go-oauth-compliance/server"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("Error running server")
	}
	log.Info().Msg("Server stopped")
}

func run() (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Bytes("stack", debug.Stack()).Msg("Recovered from panic")
			returnError = errors.New("panic recovered")
		}
	}()

	c := config.New()
	setupLogging(c)
	displayAppname(c.GetAppName())

	opts, err := serverOptions(c)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              c.GetPort(),
		Handler:           server.New(c, opts...),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() { errCh <- listenAndServe(srv) }()

	select {
	case err := <-errCh:
		return err
	case <-waitForStopSignal():
	}
	return shutdown(srv)
}

func serverOptions(c config.Config) ([]server.Option, error) {
	validator := compliance.NewValidator(c.ValidatorOptions()...)
	opts := []server.Option{server.WithValidator(validator)}

	if !c.ProviderEnabled() {
		log.Warn().Msg("OIDC_ISSUER_URL or OAUTH_CLIENT_ID not set, token proxy disabled")
		return opts, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	client, err := exchange.Discover(ctx, c.GetIssuerURL(), exchange.Config{
		ClientID:     c.GetClientID(),
		ClientSecret: c.GetClientSecret(),
		RedirectURL:  c.GetRedirectURL(),
		Scopes:       c.GetScopes(),
		AuthStyle:    c.GetAuthStyle(),
	}, exchange.WithValidator(validator))
	if err != nil {
		return nil, fmt.Errorf("exchange.Discover: %w", err)
	}
	return append(opts, server.WithExchanger(client)), nil
}

func setupLogging(c config.Config) {
	level, err := zerolog.ParseLevel(c.GetLogLevel())
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	if c.IsDev() {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
}

func listenAndServe(srv *http.Server) error {
	log.Info().Str("addr", srv.Addr).Msg("Server listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server.ListenAndServe %w", err)
	}
	return nil
}

func waitForStopSignal() <-chan os.Signal {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	return stop
}

func shutdown(srv *http.Server) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server.Shutdown: %w", err)
	}
	return nil
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
