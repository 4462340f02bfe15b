package health

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
)

// Service is the name the todo app registers with the health service. The
// empty name reports overall server health.
const Service = "simple_todo.Todos"

const DefaultInterval = 10 * time.Second

type Checker interface {
	Ping(ctx context.Context) error
}

type Server struct {
	checker  Checker
	interval time.Duration
	health   *health.Server
	grpc     *grpc.Server
	logger   zerolog.Logger
}

func New(checker Checker, interval time.Duration, logger zerolog.Logger) *Server {
	if interval <= 0 {
		interval = DefaultInterval
	}

	hs := health.NewServer()
	gs := grpc.NewServer()
	grpc_health_v1.RegisterHealthServer(gs, hs)

	return &Server{
		checker:  checker,
		interval: interval,
		health:   hs,
		grpc:     gs,
		logger:   logger,
	}
}

// Refresh pings the checker once and publishes the result for both the
// overall server and Service.
func (s *Server) Refresh(ctx context.Context) grpc_health_v1.HealthCheckResponse_ServingStatus {
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	status := grpc_health_v1.HealthCheckResponse_SERVING
	if err := s.checker.Ping(pingCtx); err != nil {
		s.logger.Warn().Err(err).Msg("Todo store health check failed")
		status = grpc_health_v1.HealthCheckResponse_NOT_SERVING
	}

	s.health.SetServingStatus("", status)
	s.health.SetServingStatus(Service, status)
	return status
}

// Run refreshes the status every interval until ctx is cancelled.
func (s *Server) Run(ctx context.Context) {
	s.Refresh(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Refresh(ctx)
		}
	}
}

func (s *Server) Check(ctx context.Context, service string) (grpc_health_v1.HealthCheckResponse_ServingStatus, error) {
	resp, err := s.health.Check(ctx, &grpc_health_v1.HealthCheckRequest{Service: service})
	if err != nil {
		return grpc_health_v1.HealthCheckResponse_UNKNOWN, err
	}
	return resp.Status, nil
}

func (s *Server) Listen(port string) (net.Listener, error) {
	return net.Listen("tcp", ":"+port)
}

func (s *Server) Serve(listener net.Listener) error {
	s.logger.Info().Str("addr", listener.Addr().String()).Msg("gRPC health service listening")
	if err := s.grpc.Serve(listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("serve grpc health: %w", err)
	}
	return nil
}

// Stop marks every service NOT_SERVING so watchers see the shutdown, then
// stops the gRPC server.
func (s *Server) Stop() {
	s.health.Shutdown()
	s.grpc.GracefulStop()
}
