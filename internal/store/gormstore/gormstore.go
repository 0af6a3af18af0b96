// Package gormstore backs the payment store with postgres via gorm.
// Selected when DB_URL is configured; the lifecycle service is unaware
// of which store it runs against.
package gormstore

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"payment-gateway/internal/domain/payment"
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Put upserts by primary key.
func (s *Store) Put(ctx context.Context, id string, p *payment.Payment) error {
	return s.db.WithContext(ctx).Save(p).Error
}

func (s *Store) Get(ctx context.Context, id string) (*payment.Payment, error) {
	var p payment.Payment
	err := s.db.WithContext(ctx).First(&p, "payment_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, payment.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}
