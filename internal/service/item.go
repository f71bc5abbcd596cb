package service

import (
	"context"

	"stocktake/internal/model"
	"stocktake/internal/repo"

	"github.com/google/uuid"
)

// ItemService инкапсулирует работу с карточками товаров.
type ItemService struct {
	repo repo.ItemRepository
}

func NewItemService(r repo.ItemRepository) *ItemService {
	return &ItemService{repo: r}
}

// Create сохраняет новый товар владельца userID.
func (s *ItemService) Create(ctx context.Context, userID int64, item *model.Item) (*model.Item, error) {
	item.ID = uuid.NewString()
	item.UserID = userID
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// ListAll возвращает все товары пользователя, по имени по возрастанию.
func (s *ItemService) ListAll(ctx context.Context, userID int64) ([]model.Item, error) {
	return s.repo.ListAll(ctx, userID)
}

// ListPage возвращает страницу товаров и общее число товаров пользователя.
func (s *ItemService) ListPage(ctx context.Context, userID int64, page, limit int) ([]model.Item, int64, error) {
	offset := (page - 1) * limit
	return s.repo.ListPage(ctx, userID, limit, offset)
}
