package client

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/keepalive"
)

// Client probes a running todo app through its gRPC health service.
type Client interface {
	ClientConn() *grpc.ClientConn
	CheckServerHealth(ctx context.Context, service string) error
	Close() error
}

type client struct {
	conn    *grpc.ClientConn
	address string
}

var (
	grpcNewClient         = grpc.NewClient
	healthNewHealthClient = grpc_health_v1.NewHealthClient
)

func New(address string) (Client, error) {
	opts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithKeepaliveParams(keepalive.ClientParameters{
			Time:    2 * time.Minute,
			Timeout: 10 * time.Second,
		}),
	}

	conn, err := grpcNewClient(address, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to gRPC server at %s: %w", address, err)
	}

	return &client{
		conn:    conn,
		address: address,
	}, nil
}

func (c *client) ClientConn() *grpc.ClientConn {
	return c.conn
}

func (c *client) Close() error {
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

func (c *client) CheckServerHealth(ctx context.Context, service string) error {
	healthClient := healthNewHealthClient(c.conn)
	resp, err := healthClient.Check(ctx, &grpc_health_v1.HealthCheckRequest{
		Service: service,
	})
	if err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	if resp.Status != grpc_health_v1.HealthCheckResponse_SERVING {
		return fmt.Errorf("server not serving: %v", resp.Status)
	}
	return nil
}
