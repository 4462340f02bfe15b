package bootstrap

import (
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"os/signal"
	"simple_todo/internal/banner"
	"simple_todo/internal/config"
	"simple_todo/internal/router"
	"simple_todo/internal/static"
	"simple_todo/internal/transport"
	"simple_todo/internal/version"
	"syscall"

	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
)

// Bootstrap wires and runs the static file server.
type Bootstrap struct {
	Config     config.Config
	Logger     zerolog.Logger
	Out        io.Writer
	Profile    termenv.Profile
	ErrChan    chan error
	SignalChan chan os.Signal
}

func New(config config.Config, logger zerolog.Logger, out io.Writer) *Bootstrap {
	return &Bootstrap{
		Config:     config,
		Logger:     logger,
		Out:        out,
		Profile:    termenv.NewOutput(out).EnvColorProfile(),
		ErrChan:    make(chan error, 1),
		SignalChan: make(chan os.Signal, 1),
	}
}

func startStaticServer(server transport.Transport, listener net.Listener, errChan chan<- error) {
	if err := server.Serve(listener); err != nil && !errors.Is(err, net.ErrClosed) {
		errChan <- fmt.Errorf("error when serving static server: %w", err)
	}
}

func (b *Bootstrap) Run() error {
	signal.Notify(b.SignalChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(b.SignalChan)

	resolver := static.New(b.Config.StaticRoot())
	rt := router.New(resolver, b.Logger)
	server := transport.NewHTTPServer(b.Config.Port(), rt, b.Config.BufferSize(), b.Logger)

	listener, err := server.Listen()
	if err != nil {
		return fmt.Errorf("failed to start static server: %w", err)
	}

	err = banner.Render(b.Out, b.Profile, banner.Info{
		Port:       b.Config.Port(),
		StaticRoot: b.Config.StaticRoot(),
		Version:    version.GetVersion(),
	})
	if err != nil {
		_ = listener.Close()
		return fmt.Errorf("failed to print banner: %w", err)
	}

	go startStaticServer(server, listener, b.ErrChan)

	select {
	case err = <-b.ErrChan:
		_ = listener.Close()
		return fmt.Errorf("service error: %w", err)
	case sig := <-b.SignalChan:
		b.Logger.Debug().Str("signal", sig.String()).Msg("Received signal, shutting down")
		if err = banner.Shutdown(b.Out); err != nil {
			b.Logger.Warn().Err(err).Msg("Failed to print shutdown message")
		}
		if err = listener.Close(); err != nil {
			b.Logger.Warn().Err(err).Msg("Failed to close listener")
		}
		return nil
	}
}
