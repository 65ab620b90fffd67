package service

import (
	"context"

	"github.com/porcentagem/api-gateway/internal/domain"
	"github.com/porcentagem/api-gateway/internal/platform/upstream"
	"github.com/stretchr/testify/mock"
)

// MockUserDirectory mocks the UserDirectory interface
type MockUserDirectory struct {
	mock.Mock
}

func (m *MockUserDirectory) FindUser(ctx context.Context, userID string) (upstream.Lookup[domain.User], error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(upstream.Lookup[domain.User]), args.Error(1)
}

// MockAccountProvider mocks the AccountProvider interface
type MockAccountProvider struct {
	mock.Mock
}

func (m *MockAccountProvider) WidgetToken(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockAccountProvider) ListRemoteAccounts(ctx context.Context, linkID string) ([]domain.RemoteAccount, error) {
	args := m.Called(ctx, linkID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RemoteAccount), args.Error(1)
}

func (m *MockAccountProvider) RegisterLink(
	ctx context.Context,
	userID, linkID, institutionName string,
) (domain.Link, error) {
	args := m.Called(ctx, userID, linkID, institutionName)
	return args.Get(0).(domain.Link), args.Error(1)
}

func (m *MockAccountProvider) ListUserLinks(ctx context.Context, userID string) ([]domain.Link, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Link), args.Error(1)
}

func (m *MockAccountProvider) DeleteLink(ctx context.Context, linkID string) (domain.Link, error) {
	args := m.Called(ctx, linkID)
	return args.Get(0).(domain.Link), args.Error(1)
}

func (m *MockAccountProvider) CreateBankAccount(
	ctx context.Context,
	input domain.BankAccountInput,
) (domain.BankAccount, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.BankAccount), args.Error(1)
}

func (m *MockAccountProvider) ListBankAccountsByUser(ctx context.Context, userID string) ([]domain.BankAccount, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BankAccount), args.Error(1)
}

func (m *MockAccountProvider) ListBankAccountsByLink(ctx context.Context, linkID string) ([]domain.BankAccount, error) {
	args := m.Called(ctx, linkID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BankAccount), args.Error(1)
}

func (m *MockAccountProvider) UpdateAccountStatuses(
	ctx context.Context,
	updates []domain.StatusUpdate,
) ([]domain.BankAccount, error) {
	args := m.Called(ctx, updates)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BankAccount), args.Error(1)
}

// MockTokenValidator mocks the TokenValidator interface
type MockTokenValidator struct {
	mock.Mock
}

func (m *MockTokenValidator) ValidateToken(ctx context.Context, authorization string) (domain.TokenValidation, error) {
	args := m.Called(ctx, authorization)
	return args.Get(0).(domain.TokenValidation), args.Error(1)
}

// MockCategoryStore mocks the CategoryStore interface
type MockCategoryStore struct {
	mock.Mock
}

func (m *MockCategoryStore) CreateCategory(ctx context.Context, input domain.CategoryInput) (domain.Category, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *MockCategoryStore) ListCategories(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCategoryStore) GetCategory(ctx context.Context, id string) (domain.Category, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *MockCategoryStore) UpdateCategory(
	ctx context.Context,
	id string,
	patch domain.CategoryPatch,
) (domain.Category, error) {
	args := m.Called(ctx, id, patch)
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *MockCategoryStore) DeleteCategory(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
