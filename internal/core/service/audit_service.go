package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/mitienda/catalog-api/internal/api/metrics"
	"github.com/mitienda/catalog-api/internal/core/domain"
	"github.com/mitienda/catalog-api/internal/core/ports"
)

// AuditService persists audit trail entries dequeued by the dispatcher.
type AuditService struct {
	repo   ports.AuditRepository
	logger zerolog.Logger
}

func NewAuditService(repo ports.AuditRepository, logger zerolog.Logger) *AuditService {
	return &AuditService{repo: repo, logger: logger}
}

func (s *AuditService) Process(ctx context.Context, entry ports.AuditEntryInput) error {
	if entry.Action == "" || entry.Entity == "" {
		metrics.AuditErrorsTotal.WithLabelValues("invalid_entry").Inc()
		return fmt.Errorf("audit entry missing action or entity: %w", domain.ErrInvalidInput)
	}

	ts := entry.Timestamp
	if ts.IsZero() {
		ts = time.Now().UTC()
	}

	err := s.repo.Insert(ctx, &domain.AuditEntry{
		Actor:     entry.Actor,
		Action:    entry.Action,
		Entity:    entry.Entity,
		EntityID:  entry.EntityID,
		Timestamp: ts,
	})
	if err != nil {
		metrics.AuditErrorsTotal.WithLabelValues("insert_failed").Inc()
		return fmt.Errorf("insert audit entry: %w", err)
	}

	metrics.AuditEntriesTotal.WithLabelValues(entry.Entity).Inc()
	s.logger.Debug().
		Str("actor", entry.Actor).
		Str("action", entry.Action).
		Int64("entity_id", entry.EntityID).
		Msg("audit entry recorded")

	return nil
}
