// Package grpc serves the standard gRPC health service.
package grpc

import (
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// HistoryService is the health service name reporting database availability.
const HistoryService = "voxlingo.history"

// Server is a gRPC server exposing grpc.health.v1.Health.
type Server struct {
	srv    *grpc.Server
	health *health.Server
}

// NewServer creates a new Server. The overall status starts as SERVING and
// the history service as NOT_SERVING until SetHistoryAvailable is called.
func NewServer(opts ...grpc.ServerOption) *Server {
	srv := grpc.NewServer(opts...)
	h := health.NewServer()
	healthpb.RegisterHealthServer(srv, h)

	h.SetServingStatus(HistoryService, healthpb.HealthCheckResponse_NOT_SERVING)

	return &Server{srv: srv, health: h}
}

// SetHistoryAvailable reports whether the history database is reachable.
func (s *Server) SetHistoryAvailable(ok bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if ok {
		status = healthpb.HealthCheckResponse_SERVING
	}
	s.health.SetServingStatus(HistoryService, status)
}

// Serve accepts connections on lis until the server stops.
func (s *Server) Serve(lis net.Listener) error {
	return s.srv.Serve(lis)
}

// Shutdown marks every service NOT_SERVING and stops gracefully.
func (s *Server) Shutdown() {
	s.health.Shutdown()
	s.srv.GracefulStop()
}
