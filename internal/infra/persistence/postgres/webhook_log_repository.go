package postgres

import (
	"context"

	"esimhub/internal/domain/entity"
	domainerrors "esimhub/internal/domain/errors"
	"esimhub/internal/domain/repository"
	"esimhub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// webhookLogRepository implements the repository.WebhookLogRepository interface.
type webhookLogRepository struct {
	db *gorm.DB
}

// NewWebhookLogRepository is the constructor for webhookLogRepository.
func NewWebhookLogRepository(db *gorm.DB) repository.WebhookLogRepository {
	return &webhookLogRepository{
		db: db,
	}
}

// CreateEntry persists a new audit entry for a received webhook.
func (repo *webhookLogRepository) CreateEntry(ctx context.Context, entry *entity.WebhookLogEntry) error {
	entryM := fromWebhookLogDomain(entry)

	if err := repo.db.WithContext(ctx).Create(entryM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create webhook log entry")
	}

	// Update the entity with generated values
	entry.ID = entryM.ID
	entry.ReceivedAt = entryM.ReceivedAt

	return nil
}

// MarkProcessed records the dispatch outcome for an entry.
func (repo *webhookLogRepository) MarkProcessed(ctx context.Context, id uuid.UUID, errText string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.WebhookLogModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"processed": true,
			"error":     errText,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark webhook log entry processed")
	}

	if result.RowsAffected == 0 {
		return repository.ErrWebhookLogNotFound
	}

	return nil
}

// ListEntries retrieves audit entries with pagination, newest first.
func (repo *webhookLogRepository) ListEntries(ctx context.Context, limit, offset int) ([]*entity.WebhookLogEntry, error) {
	var entryModels []*model.WebhookLogModel

	query := repo.db.WithContext(ctx).
		Order("received_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&entryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list webhook log entries")
	}

	entries := make([]*entity.WebhookLogEntry, 0, len(entryModels))
	for _, entryM := range entryModels {
		entries = append(entries, toWebhookLogDomain(entryM))
	}

	return entries, nil
}

// --- Mapper Functions ---

// toWebhookLogDomain converts a GORM WebhookLogModel to a domain WebhookLogEntry.
func toWebhookLogDomain(data *model.WebhookLogModel) *entity.WebhookLogEntry {
	if data == nil {
		return nil
	}

	return &entity.WebhookLogEntry{
		ID:         data.ID,
		EventType:  data.EventType,
		Payload:    data.Payload,
		Processed:  data.Processed,
		Error:      data.Error,
		ReceivedAt: data.ReceivedAt,
	}
}

// fromWebhookLogDomain converts a domain WebhookLogEntry to a GORM WebhookLogModel.
func fromWebhookLogDomain(data *entity.WebhookLogEntry) *model.WebhookLogModel {
	if data == nil {
		return nil
	}

	return &model.WebhookLogModel{
		ID:         data.ID,
		EventType:  data.EventType,
		Payload:    data.Payload,
		Processed:  data.Processed,
		Error:      data.Error,
		ReceivedAt: data.ReceivedAt,
	}
}
