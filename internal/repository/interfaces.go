package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/mhartwell/tmdlab/pkg/models"
)

// DesignRepository defines the interface for design data operations
type DesignRepository interface {
	Create(ctx context.Context, design *models.Design) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Design, error)
	GetBySessionID(ctx context.Context, sessionID string) ([]*models.Design, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string, progress int) error
	UpdateError(ctx context.Context, id uuid.UUID, errorMsg string) error
	StoreResult(ctx context.Context, result *models.DesignResult) error
	GetResult(ctx context.Context, designID uuid.UUID) (*models.DesignResult, error)
}
