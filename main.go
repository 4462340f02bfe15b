package main

import (
	"flag"
	"fmt"
	"os"
	"simple_todo/internal/bootstrap"
	"simple_todo/internal/config"
	"simple_todo/internal/logging"
	"simple_todo/internal/version"
)

func main() {
	showVersion := flag.Bool("version", false, "print version and exit")
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

	logger := logging.New(os.Stderr, conf.LogLevel(), conf.LogFormat())

	if err = bootstrap.New(conf, logger, os.Stdout).Run(); err != nil {
		logger.Fatal().Err(err).Msg("Static server stopped")
	}
}
