package bootstrap

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"simple_todo/internal/config"
	"simple_todo/internal/health"
	"simple_todo/internal/todo"
	"simple_todo/internal/web"
	"syscall"

	"github.com/rs/zerolog"
)

// TodoApp wires and runs the todo web interface, plus the gRPC health
// service when a port is configured for it.
type TodoApp struct {
	Config     config.Config
	Logger     zerolog.Logger
	Out        io.Writer
	ErrChan    chan error
	SignalChan chan os.Signal
}

func NewTodoApp(config config.Config, logger zerolog.Logger, out io.Writer) *TodoApp {
	return &TodoApp{
		Config:     config,
		Logger:     logger,
		Out:        out,
		ErrChan:    make(chan error, 2),
		SignalChan: make(chan os.Signal, 1),
	}
}

func (a *TodoApp) startHealthServer(ctx context.Context, store todo.Store) (*health.Server, error) {
	hs := health.New(store, health.DefaultInterval, a.Logger)
	listener, err := hs.Listen(a.Config.GRPCHealthPort())
	if err != nil {
		return nil, fmt.Errorf("failed to start gRPC health server: %w", err)
	}

	go hs.Run(ctx)
	go func() {
		if err := hs.Serve(listener); err != nil {
			a.ErrChan <- err
		}
	}()
	return hs, nil
}

func (a *TodoApp) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	signal.Notify(a.SignalChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(a.SignalChan)

	store, err := todo.OpenSQLite(ctx, a.Config.DatabasePath())
	if err != nil {
		return fmt.Errorf("failed to open todo store: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			a.Logger.Warn().Err(err).Msg("Failed to close todo store")
		}
	}()

	validator, err := todo.NewValidator()
	if err != nil {
		return fmt.Errorf("failed to create validator: %w", err)
	}

	srv, err := web.New(a.Config, store, validator, a.Logger)
	if err != nil {
		return fmt.Errorf("failed to create todo app: %w", err)
	}

	listener, err := srv.Listen()
	if err != nil {
		return fmt.Errorf("failed to start todo app: %w", err)
	}

	served := make(chan error, 1)
	go func() {
		served <- srv.Serve(ctx, listener)
	}()

	if a.Config.GRPCHealthPort() != "" {
		hs, err := a.startHealthServer(ctx, store)
		if err != nil {
			cancel()
			<-served
			return err
		}
		defer hs.Stop()
	}

	_, _ = fmt.Fprintf(a.Out, "📝 Todo app available at: http://localhost:%s\n", a.Config.TodoPort())

	select {
	case err = <-served:
		if err == nil {
			return nil
		}
		return fmt.Errorf("service error: %w", err)
	case err = <-a.ErrChan:
		cancel()
		<-served
		return fmt.Errorf("service error: %w", err)
	case sig := <-a.SignalChan:
		a.Logger.Info().Str("signal", sig.String()).Msg("Received signal, initiating graceful shutdown")
		cancel()
		return <-served
	}
}
