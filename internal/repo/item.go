package repo

import (
	"context"

	"stocktake/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ItemRepository определяет контракт доступа к Item для слоя сервиса.
// Все выборки обязаны фильтроваться по владельцу.
type ItemRepository interface {
	Create(ctx context.Context, item *model.Item) error

	// ListAll возвращает все товары пользователя, по имени по возрастанию.
	ListAll(ctx context.Context, userID int64) ([]model.Item, error)

	// ListPage возвращает страницу товаров пользователя и общее количество.
	// Выборка и счётчик выполняются в одной транзакции.
	ListPage(ctx context.Context, userID int64, limit, offset int) ([]model.Item, int64, error)

	GetByID(ctx context.Context, userID int64, id string) (*model.Item, error)

	// CreateSkipConflicts вставляет пачку товаров, молча пропуская строки,
	// нарушающие уникальность (user_id, upc_number). Возвращает число
	// фактически вставленных строк.
	CreateSkipConflicts(ctx context.Context, items []model.Item) (int64, error)
}

type itemRepo struct {
	db *gorm.DB
}

// NewItemRepository создаёт реализацию репозитория для Item.
func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepo{db: db}
}

func (r *itemRepo) Create(ctx context.Context, item *model.Item) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *itemRepo) ListAll(ctx context.Context, userID int64) ([]model.Item, error) {
	var items []model.Item
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("name ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *itemRepo) ListPage(ctx context.Context, userID int64, limit, offset int) ([]model.Item, int64, error) {
	var (
		items []model.Item
		total int64
	)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Item{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
			return err
		}
		return tx.Where("user_id = ?", userID).
			Order("name ASC").
			Limit(limit).
			Offset(offset).
			Find(&items).Error
	})
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *itemRepo) GetByID(ctx context.Context, userID int64, id string) (*model.Item, error) {
	var it model.Item
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		First(&it).Error
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *itemRepo) CreateSkipConflicts(ctx context.Context, items []model.Item) (int64, error) {
	if len(items) == 0 {
		return 0, nil
	}
	tx := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "upc_number"}},
		DoNothing: true,
	}).Create(&items)
	if tx.Error != nil {
		return 0, tx.Error
	}
	return tx.RowsAffected, nil
}
