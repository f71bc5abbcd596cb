package service

import (
	"context"
	"testing"

	"stocktake/internal/model"
	"stocktake/internal/repo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// мок для repo.InventoryRepository
type mockInventoryRepo struct{ mock.Mock }

func (m *mockInventoryRepo) Create(ctx context.Context, inv *model.Inventory) error {
	return m.Called(ctx, inv).Error(0)
}

func (m *mockInventoryRepo) ListPage(ctx context.Context, userID int64, limit, offset int) ([]model.Inventory, int64, error) {
	args := m.Called(ctx, userID, limit, offset)
	if v, ok := args.Get(0).([]model.Inventory); ok {
		return v, args.Get(1).(int64), args.Error(2)
	}
	return nil, 0, args.Error(2)
}

func (m *mockInventoryRepo) GetByID(ctx context.Context, userID int64, id string) (*model.Inventory, error) {
	args := m.Called(ctx, userID, id)
	if v, ok := args.Get(0).(*model.Inventory); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockInventoryRepo) CreateEntry(ctx context.Context, entry *model.InventoryEntry) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *mockInventoryRepo) ListEntries(ctx context.Context, inventoryID string) ([]model.InventoryEntry, error) {
	args := m.Called(ctx, inventoryID)
	if v, ok := args.Get(0).([]model.InventoryEntry); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.InventoryRepository = (*mockInventoryRepo)(nil)

func TestInventoryService_CountableItems_CountModeOrder(t *testing.T) {
	ctx := context.Background()
	invRepo := new(mockInventoryRepo)
	itemRepo := new(mockItemRepo)
	svc := NewInventoryService(invRepo, itemRepo)

	inv := &model.Inventory{ID: "inv-1", UserID: 7, Name: "count"}
	invRepo.On("GetByID", mock.Anything, int64(7), "inv-1").Return(inv, nil).Once()
	invRepo.On("ListEntries", mock.Anything, "inv-1").Return([]model.InventoryEntry{
		{ID: "e1", ItemID: "i1", Quantity: 2,
			Item: &model.Item{Name: "Apple", ItemType: strptr("Produce"), Brand: strptr("B"), UnitType: model.UnitQuantity}},
		{ID: "e2", ItemID: "i2", Quantity: 1,
			Item: &model.Item{Name: "Zest", Brand: strptr("A"), UnitType: model.UnitQuantity}},
		{ID: "e3", ItemID: "i3", Quantity: 3,
			Item: &model.Item{Name: "Banana", ItemType: strptr("Produce"), Brand: strptr("A"), UnitType: model.UnitQuantity}},
	}, nil).Once()

	items, err := svc.CountableItems(ctx, 7, "inv-1", OrderCountMode)
	assert.NoError(t, err)
	if assert.Len(t, items, 3) {
		assert.Equal(t, "Banana", items[0].Name)
		assert.Equal(t, "Apple", items[1].Name)
		assert.Equal(t, "Zest", items[2].Name)
	}
	invRepo.AssertExpectations(t)
}

func TestInventoryService_CountableItems_ForeignInventory(t *testing.T) {
	ctx := context.Background()
	invRepo := new(mockInventoryRepo)
	itemRepo := new(mockItemRepo)
	svc := NewInventoryService(invRepo, itemRepo)

	invRepo.On("GetByID", mock.Anything, int64(7), "someone-elses").
		Return((*model.Inventory)(nil), gorm.ErrRecordNotFound).Once()

	_, err := svc.CountableItems(ctx, 7, "someone-elses", OrderCountMode)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	invRepo.AssertNotCalled(t, "ListEntries", mock.Anything, mock.Anything)
}

func TestInventoryService_AddEntry_ChecksOwnership(t *testing.T) {
	ctx := context.Background()
	invRepo := new(mockInventoryRepo)
	itemRepo := new(mockItemRepo)
	svc := NewInventoryService(invRepo, itemRepo)

	inv := &model.Inventory{ID: "inv-1", UserID: 7}
	invRepo.On("GetByID", mock.Anything, int64(7), "inv-1").Return(inv, nil).Once()
	// товар принадлежит другому пользователю
	itemRepo.On("GetByID", mock.Anything, int64(7), "foreign-item").
		Return((*model.Item)(nil), gorm.ErrRecordNotFound).Once()

	_, err := svc.AddEntry(ctx, 7, "inv-1", "foreign-item", 1)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	invRepo.AssertNotCalled(t, "CreateEntry", mock.Anything, mock.Anything)
}

func TestInventoryService_Create_Defaults(t *testing.T) {
	ctx := context.Background()
	invRepo := new(mockInventoryRepo)
	itemRepo := new(mockItemRepo)
	svc := NewInventoryService(invRepo, itemRepo)

	invRepo.On("Create", mock.Anything, mock.MatchedBy(func(inv *model.Inventory) bool {
		return inv.ID != "" && inv.UserID == 7 && inv.Status == model.StatusDraft
	})).Return(nil).Once()

	inv, err := svc.Create(ctx, 7, &model.Inventory{Name: "weekly"})
	assert.NoError(t, err)
	assert.Equal(t, model.StatusDraft, inv.Status)
	invRepo.AssertExpectations(t)
}
