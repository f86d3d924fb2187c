package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"kolosaldash/internal/domain"
	"kolosaldash/internal/port"
)

// Model types accepted by the inference server.
const (
	ModelTypeLLM       = "llm"
	ModelTypeEmbedding = "embedding"
)

// DefaultAddModelRequest returns the add-model form with every field at its default.
func DefaultAddModelRequest() domain.AddModelRequest {
	return domain.AddModelRequest{
		ModelType:       ModelTypeLLM,
		InferenceEngine: "llama-cpu",
		MainGPUID:       -1,
		LoadImmediately: true,
		LoadingParameters: domain.LoadingParameters{
			NCtx:         4096,
			NKeep:        0,
			NBatch:       512,
			NUBatch:      512,
			NParallel:    1,
			NGPULayers:   0,
			UseMmap:      true,
			UseMlock:     false,
			ContBatching: false,
			Warmup:       true,
		},
	}
}

// EngineService manages engines on the inference server.
type EngineService interface {
	Status(ctx context.Context) (*domain.InferenceStatus, error)
	AddModel(ctx context.Context, req domain.AddModelRequest) (map[string]any, error)
	RemoveModel(ctx context.Context, engineID string) error
}

type engineService struct {
	models port.ModelManager
}

// NewEngineService creates a new EngineService implementation.
func NewEngineService(models port.ModelManager) EngineService {
	return &engineService{models: models}
}

func (s *engineService) Status(ctx context.Context) (*domain.InferenceStatus, error) {
	status, err := s.models.Status(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrRemoteRequest, err)
	}
	return status, nil
}

func (s *engineService) AddModel(ctx context.Context, req domain.AddModelRequest) (map[string]any, error) {
	req.ModelID = strings.TrimSpace(req.ModelID)
	req.ModelPath = strings.TrimSpace(req.ModelPath)
	if req.ModelID == "" || req.ModelPath == "" {
		return nil, fmt.Errorf("%w: model_id and model_path are required", domain.ErrInvalidInput)
	}
	if req.ModelType != ModelTypeLLM && req.ModelType != ModelTypeEmbedding {
		return nil, fmt.Errorf("%w: model_type must be %s or %s", domain.ErrInvalidInput, ModelTypeLLM, ModelTypeEmbedding)
	}

	log.Printf("engineService.AddModel: adding %s model %s", req.ModelType, req.ModelID)
	res, err := s.models.AddModel(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrRemoteRequest, err)
	}
	return res, nil
}

func (s *engineService) RemoveModel(ctx context.Context, engineID string) error {
	if strings.TrimSpace(engineID) == "" {
		return fmt.Errorf("%w: engine id is required", domain.ErrInvalidInput)
	}
	log.Printf("engineService.RemoveModel: removing engine %s", engineID)
	if err := s.models.RemoveModel(ctx, engineID); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrRemoteRequest, err)
	}
	return nil
}
