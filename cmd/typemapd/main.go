// Command typemapd serves the type-mapping registry over Arrow Flight.
//
// Configuration comes from the environment:
//
//	TYPEMAP_ADDRESS           listen address (default ":50051")
//	TYPEMAP_LOG_LEVEL         debug, info, warn or error (default "info")
//	TYPEMAP_TOKEN             bearer token clients must send; empty disables auth
//	TYPEMAP_MAX_MESSAGE_SIZE  gRPC message size limit in bytes (default 16MB)
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"

	"github.com/hugr-lab/typemap/auth"
	"github.com/hugr-lab/typemap/flight"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "typemapd:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := loadConfig(os.Environ())
	if err != nil {
		return err
	}
	level, _ := cfg.level()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	config := flight.ServerConfig{
		Logger:         logger,
		MaxMessageSize: cfg.MaxMessageSize,
	}
	if cfg.Token != "" {
		config.Auth = auth.StaticToken(cfg.Token, "client")
	} else {
		logger.Warn("TYPEMAP_TOKEN is empty, authentication disabled")
	}

	grpcServer := grpc.NewServer(flight.ServerOptions(config)...)
	svc, err := flight.NewServer(grpcServer, config)
	if err != nil {
		return err
	}
	defer svc.Close()

	lis, err := net.Listen("tcp", cfg.Address)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", cfg.Address, err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		logger.Info("typemapd listening", "address", lis.Addr().String())
		return grpcServer.Serve(lis)
	})
	eg.Go(func() error {
		<-ctx.Done()
		logger.Info("Shutting down")
		grpcServer.GracefulStop()
		return nil
	})
	return eg.Wait()
}
