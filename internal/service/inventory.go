package service

import (
	"context"

	"stocktake/internal/counting"
	"stocktake/internal/model"
	"stocktake/internal/repo"

	"github.com/google/uuid"
)

// Режимы упорядочивания строк сессии пересчёта.
const (
	OrderCountMode = "count"
	OrderItemType  = "item_type"
)

// InventoryService инкапсулирует сессии пересчёта и их строки.
type InventoryService struct {
	invRepo  repo.InventoryRepository
	itemRepo repo.ItemRepository
}

func NewInventoryService(ir repo.InventoryRepository, itr repo.ItemRepository) *InventoryService {
	return &InventoryService{invRepo: ir, itemRepo: itr}
}

// Create сохраняет новую сессию владельца userID.
func (s *InventoryService) Create(ctx context.Context, userID int64, inv *model.Inventory) (*model.Inventory, error) {
	inv.ID = uuid.NewString()
	inv.UserID = userID
	if inv.Status == "" {
		inv.Status = model.StatusDraft
	}
	if err := s.invRepo.Create(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

// ListPage возвращает страницу сессий и общее число сессий пользователя.
func (s *InventoryService) ListPage(ctx context.Context, userID int64, page, limit int) ([]model.Inventory, int64, error) {
	offset := (page - 1) * limit
	return s.invRepo.ListPage(ctx, userID, limit, offset)
}

// AddEntry добавляет товар в сессию. Оба должны принадлежать userID;
// чужая или отсутствующая запись отдаётся как gorm.ErrRecordNotFound.
func (s *InventoryService) AddEntry(ctx context.Context, userID int64, inventoryID, itemID string, quantity float64) (*model.InventoryEntry, error) {
	if _, err := s.invRepo.GetByID(ctx, userID, inventoryID); err != nil {
		return nil, err
	}
	if _, err := s.itemRepo.GetByID(ctx, userID, itemID); err != nil {
		return nil, err
	}

	entry := &model.InventoryEntry{
		ID:          uuid.NewString(),
		InventoryID: inventoryID,
		ItemID:      itemID,
		Quantity:    quantity,
	}
	if err := s.invRepo.CreateEntry(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// CountableItems возвращает строки сессии, упорядоченные для пересчёта.
// order — OrderCountMode (item_type → brand → name) или OrderItemType
// (item_type → name).
func (s *InventoryService) CountableItems(ctx context.Context, userID int64, inventoryID, order string) ([]counting.CountableItem, error) {
	if _, err := s.invRepo.GetByID(ctx, userID, inventoryID); err != nil {
		return nil, err
	}
	entries, err := s.invRepo.ListEntries(ctx, inventoryID)
	if err != nil {
		return nil, err
	}

	items := make([]counting.CountableItem, 0, len(entries))
	for _, e := range entries {
		ci := counting.CountableItem{
			EntryID:  e.ID,
			ItemID:   e.ItemID,
			Quantity: e.Quantity,
		}
		if e.Item != nil {
			ci.Name = e.Item.Name
			ci.Brand = e.Item.Brand
			ci.ItemType = e.Item.ItemType
			ci.UnitType = e.Item.UnitType
		}
		items = append(items, ci)
	}

	if order == OrderItemType {
		return counting.SortByItemType(items), nil
	}
	return counting.SortForCountMode(items), nil
}
