package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/nurpe/factory-records/internal/model"
	"github.com/nurpe/factory-records/internal/repository"
)

// RecordService implements get, create, update and delete for one entity type.
type RecordService[T any, P model.RecordPtr[T]] struct {
	repo *repository.RecordRepository[T, P]
	kind string
}

func NewRecordService[T any, P model.RecordPtr[T]](repo *repository.RecordRepository[T, P]) *RecordService[T, P] {
	return &RecordService[T, P]{
		repo: repo,
		kind: P(new(T)).Kind(),
	}
}

func (s *RecordService[T, P]) Kind() string {
	return s.kind
}

func (s *RecordService[T, P]) Get(ctx context.Context, id uint64) (P, error) {
	record, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, s.classify(err)
	}
	return record, nil
}

// Create inserts payload as a new row. Any id carried by payload is ignored.
func (s *RecordService[T, P]) Create(ctx context.Context, payload P) (P, error) {
	if payload == nil {
		return nil, fmt.Errorf("%w: empty payload", ErrInvalidInput)
	}
	if err := validate(payload); err != nil {
		return nil, err
	}
	record := P(new(T))
	*record = *payload
	record.SetID(0)

	err := s.repo.Transaction(ctx, func(tx *repository.RecordRepository[T, P]) error {
		return tx.Create(ctx, record)
	})
	if err != nil {
		return nil, s.classify(err)
	}
	return record, nil
}

// Update replaces every field of the row identified by id with payload.
func (s *RecordService[T, P]) Update(ctx context.Context, id uint64, payload P) (P, error) {
	if payload == nil {
		return nil, fmt.Errorf("%w: empty payload", ErrInvalidInput)
	}
	record := P(new(T))
	*record = *payload
	record.SetID(id)

	err := s.repo.Transaction(ctx, func(tx *repository.RecordRepository[T, P]) error {
		if _, err := tx.Get(ctx, id); err != nil {
			return err
		}
		if err := validate(record); err != nil {
			return err
		}
		return tx.Replace(ctx, record)
	})
	if err != nil {
		return nil, s.classify(err)
	}
	return record, nil
}

// Delete removes the row identified by id and returns its prior values.
func (s *RecordService[T, P]) Delete(ctx context.Context, id uint64) (P, error) {
	var deleted P
	err := s.repo.Transaction(ctx, func(tx *repository.RecordRepository[T, P]) error {
		record, err := tx.Get(ctx, id)
		if err != nil {
			return err
		}
		if err := tx.Delete(ctx, record); err != nil {
			return err
		}
		deleted = record
		return nil
	})
	if err != nil {
		return nil, s.classify(err)
	}
	return deleted, nil
}

func validate(record model.Record) error {
	if v, ok := record.(model.Validator); ok {
		if err := v.Validate(); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
	}
	return nil
}

func (s *RecordService[T, P]) classify(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return &RecordError{Class: ErrNotFound, Message: s.kind + " not found", Cause: err}
	case isConstraintViolation(err):
		msg := s.kind + " conflicts with existing records"
		if d, ok := any(P(new(T))).(model.ConflictDescriber); ok {
			msg = d.ConflictMessage()
		}
		return &RecordError{Class: ErrConflict, Message: msg, Cause: err}
	default:
		return err
	}
}
