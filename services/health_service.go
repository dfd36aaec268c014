package services

import (
	"context"

	"github.com/rs/zerolog"
)

const (
	StatusConnected    = "connected"
	StatusDisconnected = "disconnected"
)

// StorePinger is the liveness probe surface of the database pool.
type StorePinger interface {
	Ping(ctx context.Context) error
}

// ReadinessReport is the point-in-time composite health of both
// dependencies. Ready only when both are reachable.
type ReadinessReport struct {
	Ready    bool
	Database string
	External string
}

type HealthService struct {
	db       StorePinger
	external ExternalClient
	logger   zerolog.Logger
}

func NewHealthService(db StorePinger, external ExternalClient, logger zerolog.Logger) *HealthService {
	return &HealthService{db: db, external: external, logger: logger}
}

// Check probes both dependencies once, with no retry and no caching. A
// failing probe is folded into the report, never raised.
func (s *HealthService) Check(ctx context.Context) ReadinessReport {
	report := ReadinessReport{
		Database: StatusConnected,
		External: StatusConnected,
	}

	if err := s.db.Ping(ctx); err != nil {
		s.logger.Error().Err(err).Msg("readiness: database probe failed")
		report.Database = StatusDisconnected
	}

	if err := s.external.Health(ctx); err != nil {
		s.logger.Error().Err(err).Msg("readiness: external service probe failed")
		report.External = StatusDisconnected
	}

	report.Ready = report.Database == StatusConnected && report.External == StatusConnected
	return report
}
