package repository

import (
	"context"

	"golang-broker-scryper/internal/entity"

	"gorm.io/gorm"
)

// BrokerRepository provides access to the tracked brokers.
type BrokerRepository interface {
	GetBrokers(ctx context.Context) ([]entity.Broker, error)
	GetByID(ctx context.Context, id uint) (*entity.Broker, error)
}

type brokerRepository struct {
	db *gorm.DB
}

// NewBrokerRepository creates a new BrokerRepository.
func NewBrokerRepository(db *gorm.DB) BrokerRepository {
	return &brokerRepository{db: db}
}

func (r *brokerRepository) GetBrokers(ctx context.Context) ([]entity.Broker, error) {
	var brokers []entity.Broker
	if err := r.db.WithContext(ctx).Order("id").Find(&brokers).Error; err != nil {
		return nil, err
	}
	return brokers, nil
}

func (r *brokerRepository) GetByID(ctx context.Context, id uint) (*entity.Broker, error) {
	var broker entity.Broker
	if err := r.db.WithContext(ctx).First(&broker, id).Error; err != nil {
		return nil, err
	}
	return &broker, nil
}
