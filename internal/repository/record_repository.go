package repository

import (
	"context"

	"gorm.io/gorm"

	"healthfit/internal/model"
)

// RecordRepository stores one kind of per-user logged record.
type RecordRepository[T model.Record] interface {
	Create(ctx context.Context, record *T) error
	// ListByUser returns the user's records, newest first.
	ListByUser(ctx context.Context, userID string) ([]T, error)
}

type recordRepository[T model.Record] struct {
	db      *gorm.DB
	orderBy string
}

// NewRecordRepository builds a GORM-backed repository for record kind T.
func NewRecordRepository[T model.Record](db *gorm.DB) RecordRepository[T] {
	return &recordRepository[T]{
		db:      db,
		orderBy: model.RecencyColumn[T]() + " DESC",
	}
}

// Create inserts a new record.
func (r *recordRepository[T]) Create(ctx context.Context, record *T) error {
	return r.db.WithContext(ctx).Create(record).Error
}

// ListByUser lists records owned by userID.
func (r *recordRepository[T]) ListByUser(ctx context.Context, userID string) ([]T, error) {
	records := make([]T, 0)
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order(r.orderBy).
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
