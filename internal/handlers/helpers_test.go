package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"stocktake/internal/config"
	"stocktake/internal/handlers"
	"stocktake/internal/middleware"
	"stocktake/internal/model"
	"stocktake/internal/repo"
	"stocktake/internal/service"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// Minimal mocks

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockUserRepo) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockUserRepo) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockUserRepo) ListUsers(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]model.User); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockUserRepo) UpdateRole(ctx context.Context, id int64, role string) (*model.User, error) {
	args := m.Called(ctx, id, role)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.UserRepository = (*mockUserRepo)(nil)

type mockItemRepo struct{ mock.Mock }

func (m *mockItemRepo) Create(ctx context.Context, item *model.Item) error {
	return m.Called(ctx, item).Error(0)
}
func (m *mockItemRepo) ListAll(ctx context.Context, userID int64) ([]model.Item, error) {
	args := m.Called(ctx, userID)
	if v, ok := args.Get(0).([]model.Item); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockItemRepo) ListPage(ctx context.Context, userID int64, limit, offset int) ([]model.Item, int64, error) {
	args := m.Called(ctx, userID, limit, offset)
	if v, ok := args.Get(0).([]model.Item); ok {
		return v, args.Get(1).(int64), args.Error(2)
	}
	return nil, 0, args.Error(2)
}
func (m *mockItemRepo) GetByID(ctx context.Context, userID int64, id string) (*model.Item, error) {
	args := m.Called(ctx, userID, id)
	if v, ok := args.Get(0).(*model.Item); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockItemRepo) CreateSkipConflicts(ctx context.Context, items []model.Item) (int64, error) {
	args := m.Called(ctx, items)
	return args.Get(0).(int64), args.Error(1)
}

var _ repo.ItemRepository = (*mockItemRepo)(nil)

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

// --- Helpers ---

type testMocks struct {
	users *mockUserRepo
	items *mockItemRepo
	invs  *mockInventoryRepo
}

const testSecret = "test-secret"

func newTestRouter(t *testing.T) (http.Handler, *testMocks) {
	t.Helper()
	cfg := &config.Config{AuthSecret: testSecret, DefaultPageSize: 10}
	logger := zap.NewNop().Sugar()

	m := &testMocks{users: &mockUserRepo{}, items: &mockItemRepo{}, invs: &mockInventoryRepo{}}

	userSvc := service.NewUserService(m.users)
	itemSvc := service.NewItemService(m.items)
	invSvc := service.NewInventoryService(m.invs, m.items)
	transferSvc := service.NewTransferService(m.items)

	h := handlers.NewHandler(userSvc, itemSvc, invSvc, transferSvc, logger, cfg)
	return h.Router, m
}

func addAuthCookie(t *testing.T, req *http.Request, userID int64, secret string) {
	t.Helper()
	rr := httptest.NewRecorder()
	_ = middleware.SetLoginCookie(rr, userID, secret)
	for _, c := range rr.Result().Cookies() {
		req.AddCookie(c)
	}
}

func strptr(s string) *string { return &s }
