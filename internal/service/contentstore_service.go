package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"timo-intelligence-be/internal/content"
	"timo-intelligence-be/internal/dto"
	"timo-intelligence-be/internal/pkg/logger"
	"timo-intelligence-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrNoContent       = errors.New("no content stored yet")
	ErrInvalidDocument = errors.New("document failed structural validation")
	ErrSnapshotMissing = errors.New("snapshot not found")
)

// IContentStoreService backs the content API binary: the remote mirror
// the site backend talks to.
type IContentStoreService interface {
	Get(ctx context.Context) (json.RawMessage, error)
	Put(ctx context.Context, document []byte) error
	History(ctx context.Context, limit int) ([]dto.SnapshotSummary, error)
	Restore(ctx context.Context, id uuid.UUID) (json.RawMessage, error)
}

type contentStoreService struct {
	repo contract.ContentRepository
	log  logger.ILogger
}

func NewContentStoreService(repo contract.ContentRepository, log logger.ILogger) IContentStoreService {
	return &contentStoreService{repo: repo, log: log}
}

func (s *contentStoreService) Get(ctx context.Context) (json.RawMessage, error) {
	record, err := s.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoContent
		}
		return nil, err
	}
	return json.RawMessage(record.Document), nil
}

// Put accepts only structurally complete documents. A malformed write
// never replaces the live row.
func (s *contentStoreService) Put(ctx context.Context, document []byte) error {
	if content.DecodeDocument(document) == nil {
		s.log.Warn("ContentStore", "Rejected invalid document", nil)
		return ErrInvalidDocument
	}
	if err := s.repo.Upsert(ctx, document); err != nil {
		return err
	}
	s.log.Info("ContentStore", "Document stored", nil)
	return nil
}

func (s *contentStoreService) History(ctx context.Context, limit int) ([]dto.SnapshotSummary, error) {
	snapshots, err := s.repo.History(ctx, limit)
	if err != nil {
		return nil, err
	}
	summaries := make([]dto.SnapshotSummary, 0, len(snapshots))
	for _, snap := range snapshots {
		summaries = append(summaries, dto.SnapshotSummary{
			Id:      snap.Id.String(),
			SavedAt: snap.SavedAt.Format(time.RFC3339),
		})
	}
	return summaries, nil
}

// Restore promotes a history snapshot back to the live document. The
// restore itself is recorded as a new snapshot.
func (s *contentStoreService) Restore(ctx context.Context, id uuid.UUID) (json.RawMessage, error) {
	snapshot, err := s.repo.GetSnapshot(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSnapshotMissing
		}
		return nil, err
	}

	document := []byte(snapshot.Document)
	if content.DecodeDocument(document) == nil {
		return nil, ErrInvalidDocument
	}
	if err := s.repo.Upsert(ctx, document); err != nil {
		return nil, err
	}
	s.log.Info("ContentStore", "Snapshot restored", map[string]interface{}{"snapshot_id": id.String()})
	return json.RawMessage(document), nil
}
