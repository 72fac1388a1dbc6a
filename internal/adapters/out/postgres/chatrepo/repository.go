package chatrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"opsconsole/internal/core/domain/model/chat"
	"opsconsole/internal/core/domain/model/kernel"
	"opsconsole/internal/pkg/errs"
)

// GormChatRepository implements the chat repository port using GORM.
type GormChatRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// NewGormChatRepository creates a new GORM chat repository.
func NewGormChatRepository(db *gorm.DB, tracker aggregateTracker) *GormChatRepository {
	return &GormChatRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add persists a new conversation together with its messages.
func (r *GormChatRepository) Add(ctx context.Context, aggregate *chat.Conversation) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID().String(), aggregate)
	return nil
}

// Update persists newly recorded messages and the refreshed title of an
// existing conversation. Messages are immutable once stored, so rows that
// already exist are left untouched.
func (r *GormChatRepository) Update(ctx context.Context, aggregate *chat.Conversation) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ConversationDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]interface{}{
			"title":      dto.Title,
			"updated_at": dto.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("conversationID", dto.ID)
	}

	if len(dto.Messages) > 0 {
		err := r.db.WithContext(ctx).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(&dto.Messages).Error
		if err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID().String(), aggregate)
	return nil
}

// Get retrieves a conversation with its messages by identifier.
func (r *GormChatRepository) Get(ctx context.Context, id kernel.TokenID) (*chat.Conversation, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ConversationDTO
	err := r.db.WithContext(ctx).
		Preload("Messages", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at, id")
		}).
		First(&dto, "id = ?", id.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("conversationID", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
