package transport

import (
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// LedgerServiceName is the service name reported by the gRPC health server.
const LedgerServiceName = "arogya.ledger.v1.Ledger"

// NewHealthServer returns a health server reporting the ledger as serving.
func NewHealthServer() *health.Server {
	s := health.NewServer()
	s.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	s.SetServingStatus(LedgerServiceName, healthpb.HealthCheckResponse_SERVING)
	return s
}
