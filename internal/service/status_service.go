package service

import (
	"context"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"kolosaldash/internal/domain"
	"kolosaldash/internal/port"
)

// StatusService aggregates the health of every collaborator.
type StatusService interface {
	Dashboard(ctx context.Context) *domain.DashboardStatus
}

type statusService struct {
	inference  port.ModelManager
	documents  port.DocumentStore
	markitdown port.HealthChecker
	docling    port.HealthChecker
}

// NewStatusService creates a new StatusService implementation.
func NewStatusService(inference port.ModelManager, documents port.DocumentStore, markitdown, docling port.HealthChecker) StatusService {
	return &statusService{
		inference:  inference,
		documents:  documents,
		markitdown: markitdown,
		docling:    docling,
	}
}

// Dashboard queries all collaborators concurrently. A failing collaborator is
// reported as unavailable and never hides the others.
func (s *statusService) Dashboard(ctx context.Context) *domain.DashboardStatus {
	out := &domain.DashboardStatus{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		status, err := s.inference.Status(gctx)
		if err != nil {
			log.Printf("statusService.Dashboard: inference server unavailable: %v", err)
			status = &domain.InferenceStatus{Status: domain.StatusUnavailable}
		}
		out.InferenceStatus = status
		return nil
	})
	g.Go(func() error {
		out.MarkitdownStatus = s.health(gctx, s.markitdown, "markitdown-api")
		return nil
	})
	g.Go(func() error {
		out.DoclingStatus = s.health(gctx, s.docling, "docling-api")
		return nil
	})
	g.Go(func() error {
		docs, err := s.documents.ListDocuments(gctx)
		if err != nil {
			log.Printf("statusService.Dashboard: document list unavailable: %v", err)
			return nil
		}
		out.DocumentsData = docs
		return nil
	})
	_ = g.Wait()

	out.LastUpdated = time.Now().UTC().Format(time.RFC3339)
	return out
}

func (s *statusService) health(ctx context.Context, checker port.HealthChecker, service string) *domain.ServiceStatus {
	status, err := checker.Health(ctx)
	if err != nil {
		log.Printf("statusService.Dashboard: %s unavailable: %v", service, err)
		return &domain.ServiceStatus{Status: domain.StatusUnavailable, Service: service}
	}
	return status
}
