package repository

import (
	"context"

	"golang-broker-scryper/internal/entity"

	"gorm.io/gorm"
)

// FetchRunRepository persists the history of fetch-and-store runs.
type FetchRunRepository interface {
	Create(ctx context.Context, run *entity.FetchRun) error
	Update(ctx context.Context, run *entity.FetchRun) error
	GetAll(ctx context.Context, limit int) ([]entity.FetchRun, error)
}

type fetchRunRepository struct {
	db *gorm.DB
}

// NewFetchRunRepository creates a new FetchRunRepository.
func NewFetchRunRepository(db *gorm.DB) FetchRunRepository {
	return &fetchRunRepository{db: db}
}

func (r *fetchRunRepository) Create(ctx context.Context, run *entity.FetchRun) error {
	return r.db.WithContext(ctx).Create(run).Error
}

func (r *fetchRunRepository) Update(ctx context.Context, run *entity.FetchRun) error {
	return r.db.WithContext(ctx).Save(run).Error
}

func (r *fetchRunRepository) GetAll(ctx context.Context, limit int) ([]entity.FetchRun, error) {
	if limit <= 0 {
		limit = 50
	}
	var runs []entity.FetchRun
	err := r.db.WithContext(ctx).Order("started_at DESC").Limit(limit).Find(&runs).Error
	if err != nil {
		return nil, err
	}
	return runs, nil
}
