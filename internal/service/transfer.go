package service

import (
	"context"

	"stocktake/internal/model"
	"stocktake/internal/repo"

	"github.com/google/uuid"
)

// TransferReport — итог копирования товаров между пользователями.
type TransferReport struct {
	Total   int   // сколько товаров было у источника
	Copied  int64 // сколько реально вставлено
	Skipped int64 // пропущено из-за конфликта UPC у получателя
}

// TransferService копирует товары между учётками (админская операция).
type TransferService struct {
	itemRepo repo.ItemRepository
}

func NewTransferService(r repo.ItemRepository) *TransferService {
	return &TransferService{itemRepo: r}
}

// TransferItems копирует (не переносит) все товары sourceID пользователю
// targetID. Копия получает новый идентификатор и нового владельца; строки,
// конфликтующие по (user_id, upc_number), молча пропускаются.
func (s *TransferService) TransferItems(ctx context.Context, sourceID, targetID int64) (TransferReport, error) {
	src, err := s.itemRepo.ListAll(ctx, sourceID)
	if err != nil {
		return TransferReport{}, err
	}
	if len(src) == 0 {
		return TransferReport{}, nil
	}

	copies := make([]model.Item, 0, len(src))
	for _, it := range src {
		copies = append(copies, model.Item{
			ID:                   uuid.NewString(),
			UserID:               targetID,
			Name:                 it.Name,
			UPCNumber:            it.UPCNumber,
			AverageWeightPerUnit: it.AverageWeightPerUnit,
			UnitType:             it.UnitType,
			ItemType:             it.ItemType,
			Brand:                it.Brand,
		})
	}

	copied, err := s.itemRepo.CreateSkipConflicts(ctx, copies)
	if err != nil {
		return TransferReport{}, err
	}
	return TransferReport{
		Total:   len(src),
		Copied:  copied,
		Skipped: int64(len(src)) - copied,
	}, nil
}
