package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"simple_todo/internal/bootstrap"
	"simple_todo/internal/config"
	"simple_todo/internal/grpc/client"
	"simple_todo/internal/health"
	"simple_todo/internal/logging"
	"simple_todo/internal/version"
	"time"
)

// probe asks a running todo app for its gRPC health status.
func probe(conf config.Config) error {
	if conf.GRPCHealthPort() == "" {
		return fmt.Errorf("GRPC_HEALTH_PORT is not set")
	}

	cli, err := client.New("localhost:" + conf.GRPCHealthPort())
	if err != nil {
		return err
	}
	defer cli.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return cli.CheckServerHealth(ctx, health.Service)
}

func main() {
	showVersion := flag.Bool("version", false, "print version and exit")
	healthCheck := flag.Bool("healthcheck", false, "probe the gRPC health service of a running todo app and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.GetVersion())
		os.Exit(0)
	}

	conf, err := config.MustLoad()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %s\n", err)
		os.Exit(1)
	}

	if *healthCheck {
		if err = probe(conf); err != nil {
			fmt.Fprintf(os.Stderr, "Unhealthy: %s\n", err)
			os.Exit(1)
		}
		fmt.Println("SERVING")
		os.Exit(0)
	}

	logger := logging.New(os.Stderr, conf.LogLevel(), conf.LogFormat())
	logger.Info().Str("version", version.GetShortVersion()).Str("database", conf.DatabasePath()).Msg("Starting todo app")

	if err = bootstrap.NewTodoApp(conf, logger, os.Stdout).Run(); err != nil {
		logger.Fatal().Err(err).Msg("Todo app stopped")
	}
}
