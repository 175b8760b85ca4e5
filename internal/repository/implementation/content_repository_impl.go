package implementation

import (
	"context"
	"time"

	"timo-intelligence-be/internal/entity"
	"timo-intelligence-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// liveRecordId keys the single row carrying the current document.
const liveRecordId = "main"

// historyLimit caps retained snapshots; older ones are pruned on write.
const historyLimit = 50

type ContentRepositoryImpl struct {
	db *gorm.DB
}

func NewContentRepository(db *gorm.DB) contract.ContentRepository {
	return &ContentRepositoryImpl{db: db}
}

func (r *ContentRepositoryImpl) Get(ctx context.Context) (*entity.ContentRecord, error) {
	var record entity.ContentRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", liveRecordId).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *ContentRepositoryImpl) Upsert(ctx context.Context, document []byte) error {
	now := time.Now()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		record := entity.ContentRecord{
			Id:        liveRecordId,
			Document:  datatypes.JSON(document),
			UpdatedAt: now,
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"document", "updated_at"}),
		}).Create(&record).Error; err != nil {
			return err
		}

		snapshot := entity.ContentHistory{
			Id:       uuid.New(),
			Document: datatypes.JSON(document),
			SavedAt:  now,
		}
		if err := tx.Create(&snapshot).Error; err != nil {
			return err
		}

		// Prune everything beyond the newest historyLimit snapshots.
		var cutoff entity.ContentHistory
		err := tx.Order("saved_at DESC").Offset(historyLimit - 1).First(&cutoff).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil
			}
			return err
		}
		return tx.Where("saved_at < ?", cutoff.SavedAt).Delete(&entity.ContentHistory{}).Error
	})
}

func (r *ContentRepositoryImpl) History(ctx context.Context, limit int) ([]entity.ContentHistory, error) {
	if limit <= 0 || limit > historyLimit {
		limit = historyLimit
	}
	var snapshots []entity.ContentHistory
	err := r.db.WithContext(ctx).
		Order("saved_at DESC").
		Limit(limit).
		Find(&snapshots).Error
	return snapshots, err
}

func (r *ContentRepositoryImpl) GetSnapshot(ctx context.Context, id uuid.UUID) (*entity.ContentHistory, error) {
	var snapshot entity.ContentHistory
	if err := r.db.WithContext(ctx).First(&snapshot, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &snapshot, nil
}
