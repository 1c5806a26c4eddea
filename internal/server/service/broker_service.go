package service

import (
	"context"

	"golang-broker-scryper/internal/entity"
	"golang-broker-scryper/internal/server/repository"
)

// BrokerService serves the tracked broker listing.
type BrokerService interface {
	GetBrokers(ctx context.Context) ([]entity.Broker, error)
}

type brokerService struct {
	brokerRepo repository.BrokerRepository
}

// NewBrokerService creates a new BrokerService.
func NewBrokerService(brokerRepo repository.BrokerRepository) BrokerService {
	return &brokerService{brokerRepo: brokerRepo}
}

func (s *brokerService) GetBrokers(ctx context.Context) ([]entity.Broker, error) {
	brokers, err := s.brokerRepo.GetBrokers(ctx)
	if err != nil {
		return nil, err
	}
	if len(brokers) == 0 {
		return nil, ErrNoBrokers
	}
	return brokers, nil
}
