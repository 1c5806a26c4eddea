package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang-broker-scryper/internal/server/dto"
)

func TestStockRecordCreateRejectsBadDate(t *testing.T) {
	svc := NewStockRecordService(newFakeRecordRepo(), nil, time.Minute, newTestLogger(t))

	_, err := svc.Create(context.Background(), &dto.CreateStockRecordRequest{
		BrokerID:  1,
		StockCode: "2330",
		Date:      "10/01/2024",
	})
	assert.Error(t, err)
}

func TestStockRecordCreateThenUpdate(t *testing.T) {
	repo := newFakeRecordRepo()
	svc := NewStockRecordService(repo, nil, time.Minute, newTestLogger(t))

	req := &dto.CreateStockRecordRequest{
		BrokerID:  1,
		StockCode: "2330",
		StockName: "台積電",
		Date:      "2024-01-10",
		BuyVolume: 120,
	}

	created, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Len(t, repo.records, 1)
}

func TestStockRecordCreateDefaultsRecordType(t *testing.T) {
	repo := newFakeRecordRepo()
	svc := NewStockRecordService(repo, nil, time.Minute, newTestLogger(t))

	_, err := svc.Create(context.Background(), &dto.CreateStockRecordRequest{
		BrokerID:  1,
		StockCode: "2330",
		Date:      "2024-01-10",
	})
	require.NoError(t, err)
	for _, r := range repo.records {
		assert.Equal(t, 1, r.RecordType)
	}
}

func TestStockRecordGetByDateFormatsDates(t *testing.T) {
	repo := newFakeRecordRepo()
	svc := NewStockRecordService(repo, nil, time.Minute, newTestLogger(t))

	_, err := svc.Create(context.Background(), &dto.CreateStockRecordRequest{
		BrokerID:  1,
		StockCode: "2330",
		StockName: "台積電",
		Date:      "2024-01-10",
		BuyVolume: 120,
		NetVolume: 120,
	})
	require.NoError(t, err)

	date, _ := time.Parse("2006-01-02", "2024-01-10")
	records, err := svc.GetByDate(context.Background(), date)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "2024-01-10", records[0].Date)
	assert.Equal(t, "台積電", records[0].StockName)
}
