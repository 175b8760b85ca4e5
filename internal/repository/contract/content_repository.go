package contract

import (
	"context"

	"timo-intelligence-be/internal/entity"

	"github.com/google/uuid"
)

type ContentRepository interface {
	// Get returns the live document or gorm.ErrRecordNotFound.
	Get(ctx context.Context) (*entity.ContentRecord, error)

	// Upsert replaces the live document and appends a history snapshot.
	Upsert(ctx context.Context, document []byte) error

	// History lists snapshots, newest first.
	History(ctx context.Context, limit int) ([]entity.ContentHistory, error)

	// GetSnapshot returns one history entry.
	GetSnapshot(ctx context.Context, id uuid.UUID) (*entity.ContentHistory, error)
}
