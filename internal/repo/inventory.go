package repo

import (
	"context"

	"stocktake/internal/model"

	"gorm.io/gorm"
)

// InventoryRepository определяет контракт доступа к Inventory и его строкам.
type InventoryRepository interface {
	Create(ctx context.Context, inv *model.Inventory) error

	// ListPage возвращает страницу сессий пользователя и общее количество,
	// новые сверху. Выборка и счётчик — в одной транзакции.
	ListPage(ctx context.Context, userID int64, limit, offset int) ([]model.Inventory, int64, error)

	GetByID(ctx context.Context, userID int64, id string) (*model.Inventory, error)

	CreateEntry(ctx context.Context, entry *model.InventoryEntry) error

	// ListEntries возвращает строки сессии вместе с товарами.
	ListEntries(ctx context.Context, inventoryID string) ([]model.InventoryEntry, error)
}

type inventoryRepo struct {
	db *gorm.DB
}

// NewInventoryRepository создаёт реализацию репозитория для Inventory.
func NewInventoryRepository(db *gorm.DB) InventoryRepository {
	return &inventoryRepo{db: db}
}

func (r *inventoryRepo) Create(ctx context.Context, inv *model.Inventory) error {
	return r.db.WithContext(ctx).Create(inv).Error
}

func (r *inventoryRepo) ListPage(ctx context.Context, userID int64, limit, offset int) ([]model.Inventory, int64, error) {
	var (
		invs  []model.Inventory
		total int64
	)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Inventory{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
			return err
		}
		return tx.Where("user_id = ?", userID).
			Order("created_at DESC").
			Limit(limit).
			Offset(offset).
			Find(&invs).Error
	})
	if err != nil {
		return nil, 0, err
	}
	return invs, total, nil
}

func (r *inventoryRepo) GetByID(ctx context.Context, userID int64, id string) (*model.Inventory, error) {
	var inv model.Inventory
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		First(&inv).Error
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *inventoryRepo) CreateEntry(ctx context.Context, entry *model.InventoryEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *inventoryRepo) ListEntries(ctx context.Context, inventoryID string) ([]model.InventoryEntry, error) {
	var entries []model.InventoryEntry
	err := r.db.WithContext(ctx).
		Preload("Item").
		Where("inventory_id = ?", inventoryID).
		Order("created_at ASC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
