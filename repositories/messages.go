package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"portfolio-blog/db"
	"portfolio-blog/models"
)

type MessageRepository struct {
	col collection[models.Message]
}

func NewMessageRepository(src Source) *MessageRepository {
	return &MessageRepository{col: collection[models.Message]{src: src, name: db.CollectionMessages}}
}

// Insert assigns a new id and timestamps, then stores the message.
func (r *MessageRepository) Insert(ctx context.Context, m *models.Message) error {
	now := Now()
	m.ID = primitive.NewObjectID()
	m.CreatedAt = now
	m.UpdatedAt = now
	return r.col.insert(ctx, m)
}

// List returns messages matching f, newest first.
func (r *MessageRepository) List(ctx context.Context, f MessageFilter) ([]models.Message, error) {
	return r.col.find(ctx, f.bson())
}

func (r *MessageRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Message, error) {
	return r.col.findByID(ctx, id)
}

// Update replaces the stored message and refreshes updatedAt.
func (r *MessageRepository) Update(ctx context.Context, m *models.Message) error {
	m.UpdatedAt = Now()
	return r.col.replace(ctx, m.ID, m)
}

func (r *MessageRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return r.col.delete(ctx, id)
}

// Count backs the dashboard message and unread counters.
func (r *MessageRepository) Count(ctx context.Context, f MessageFilter) (int64, error) {
	return r.col.count(ctx, f.bson())
}
