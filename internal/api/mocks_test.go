package api

import (
	"context"

	"github.com/porcentagem/api-gateway/internal/domain"
)

// mockBankLinkService implements service.BankLinkService with per-method funcs.
// Calling a method whose func is nil panics, which fails the test loudly.
type mockBankLinkService struct {
	linkAccountFn            func(ctx context.Context, userID, linkID, institutionName string) (domain.Link, error)
	listAndCreateAccountsFn  func(ctx context.Context, linkID, userID string) (*domain.ReconciliationReport, error)
	updateBankAccountsFn     func(ctx context.Context, updates []domain.StatusUpdate) ([]domain.BankAccount, error)
	generateWidgetTokenFn    func(ctx context.Context) (domain.WidgetToken, error)
	listRemoteAccountsFn     func(ctx context.Context, linkID string) ([]domain.RemoteAccount, error)
	listUserLinksFn          func(ctx context.Context, userID string) ([]domain.Link, error)
	unlinkBankFn             func(ctx context.Context, linkID string) (domain.Link, error)
	createBankAccountFn      func(ctx context.Context, input domain.BankAccountInput) (domain.BankAccount, error)
	listBankAccountsByUserFn func(ctx context.Context, userID string) ([]domain.BankAccount, error)
	listBankAccountsByLinkFn func(ctx context.Context, linkID string) ([]domain.BankAccount, error)
}

func (m *mockBankLinkService) LinkAccount(
	ctx context.Context,
	userID, linkID, institutionName string,
) (domain.Link, error) {
	return m.linkAccountFn(ctx, userID, linkID, institutionName)
}

func (m *mockBankLinkService) ListAndCreateAccounts(
	ctx context.Context,
	linkID, userID string,
) (*domain.ReconciliationReport, error) {
	return m.listAndCreateAccountsFn(ctx, linkID, userID)
}

func (m *mockBankLinkService) UpdateBankAccounts(
	ctx context.Context,
	updates []domain.StatusUpdate,
) ([]domain.BankAccount, error) {
	return m.updateBankAccountsFn(ctx, updates)
}

func (m *mockBankLinkService) GenerateWidgetToken(ctx context.Context) (domain.WidgetToken, error) {
	return m.generateWidgetTokenFn(ctx)
}

func (m *mockBankLinkService) ListRemoteAccounts(ctx context.Context, linkID string) ([]domain.RemoteAccount, error) {
	return m.listRemoteAccountsFn(ctx, linkID)
}

func (m *mockBankLinkService) ListUserLinks(ctx context.Context, userID string) ([]domain.Link, error) {
	return m.listUserLinksFn(ctx, userID)
}

func (m *mockBankLinkService) UnlinkBank(ctx context.Context, linkID string) (domain.Link, error) {
	return m.unlinkBankFn(ctx, linkID)
}

func (m *mockBankLinkService) CreateBankAccount(
	ctx context.Context,
	input domain.BankAccountInput,
) (domain.BankAccount, error) {
	return m.createBankAccountFn(ctx, input)
}

func (m *mockBankLinkService) ListBankAccountsByUser(ctx context.Context, userID string) ([]domain.BankAccount, error) {
	return m.listBankAccountsByUserFn(ctx, userID)
}

func (m *mockBankLinkService) ListBankAccountsByLink(ctx context.Context, linkID string) ([]domain.BankAccount, error) {
	return m.listBankAccountsByLinkFn(ctx, linkID)
}

// mockTokenService implements service.TokenService.
type mockTokenService struct {
	validateTokenFn func(ctx context.Context, authorization string) (domain.TokenValidation, error)
}

func (m *mockTokenService) ValidateToken(ctx context.Context, authorization string) (domain.TokenValidation, error) {
	return m.validateTokenFn(ctx, authorization)
}

// mockCategoryService implements service.CategoryService.
type mockCategoryService struct {
	createFn func(ctx context.Context, input domain.CategoryInput) (domain.Category, error)
	listFn   func(ctx context.Context) ([]domain.Category, error)
	getFn    func(ctx context.Context, id string) (domain.Category, error)
	updateFn func(ctx context.Context, id string, patch domain.CategoryPatch) (domain.Category, error)
	deleteFn func(ctx context.Context, id string) error
}

func (m *mockCategoryService) CreateCategory(ctx context.Context, input domain.CategoryInput) (domain.Category, error) {
	return m.createFn(ctx, input)
}

func (m *mockCategoryService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return m.listFn(ctx)
}

func (m *mockCategoryService) GetCategory(ctx context.Context, id string) (domain.Category, error) {
	return m.getFn(ctx, id)
}

func (m *mockCategoryService) UpdateCategory(
	ctx context.Context,
	id string,
	patch domain.CategoryPatch,
) (domain.Category, error) {
	return m.updateFn(ctx, id, patch)
}

func (m *mockCategoryService) DeleteCategory(ctx context.Context, id string) error {
	return m.deleteFn(ctx, id)
}
