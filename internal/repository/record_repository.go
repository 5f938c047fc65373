package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/nurpe/factory-records/internal/model"
)

// RecordRepository persists one entity type. Errors are returned as gorm
// reports them; callers classify gorm.ErrRecordNotFound and the translated
// constraint errors.
type RecordRepository[T any, P model.RecordPtr[T]] struct {
	db *gorm.DB
}

func NewRecordRepository[T any, P model.RecordPtr[T]](db *gorm.DB) *RecordRepository[T, P] {
	return &RecordRepository[T, P]{db: db}
}

// Transaction runs fn against a repository bound to a single transaction.
// The transaction is committed when fn returns nil and rolled back otherwise.
func (r *RecordRepository[T, P]) Transaction(ctx context.Context, fn func(tx *RecordRepository[T, P]) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&RecordRepository[T, P]{db: tx})
	})
}

func (r *RecordRepository[T, P]) Get(ctx context.Context, id uint64) (P, error) {
	var record T
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&record).Error; err != nil {
		return nil, err
	}
	return P(&record), nil
}

func (r *RecordRepository[T, P]) Create(ctx context.Context, record P) error {
	return r.db.WithContext(ctx).Create(record).Error
}

// Replace writes every column of record, zero values included.
func (r *RecordRepository[T, P]) Replace(ctx context.Context, record P) error {
	return r.db.WithContext(ctx).Model(record).Select("*").Omit("id").Updates(record).Error
}

func (r *RecordRepository[T, P]) Delete(ctx context.Context, record P) error {
	return r.db.WithContext(ctx).Delete(record).Error
}
