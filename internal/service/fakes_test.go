package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/porcentagem/api-gateway/internal/domain"
)

// fakeProvider is an in-memory AccountProvider that keeps local accounts
// across calls, so reconciliation can be run repeatedly against it.
type fakeProvider struct {
	MockAccountProvider

	mu         sync.Mutex
	remote     map[string][]domain.RemoteAccount
	local      []domain.BankAccount
	failCreate map[string]error
	creates    []string
	onCreate   func() // runs after each successful creation
}

func newFakeProvider() *fakeProvider {
	return &fakeProvider{
		remote:     map[string][]domain.RemoteAccount{},
		failCreate: map[string]error{},
	}
}

func (f *fakeProvider) ListRemoteAccounts(_ context.Context, linkID string) ([]domain.RemoteAccount, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domain.RemoteAccount(nil), f.remote[linkID]...), nil
}

func (f *fakeProvider) ListBankAccountsByLink(_ context.Context, linkID string) ([]domain.BankAccount, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []domain.BankAccount
	for _, account := range f.local {
		if account.LinkID == linkID {
			out = append(out, account)
		}
	}
	return out, nil
}

// CreateBankAccount fails on a done context like a real HTTP call would.
func (f *fakeProvider) CreateBankAccount(ctx context.Context, input domain.BankAccountInput) (domain.BankAccount, error) {
	if err := ctx.Err(); err != nil {
		return domain.BankAccount{}, err
	}

	account, err := f.create(input)
	if err == nil && f.onCreate != nil {
		f.onCreate()
	}
	return account, err
}

func (f *fakeProvider) create(input domain.BankAccountInput) (domain.BankAccount, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.creates = append(f.creates, input.BankAccountID)
	if err := f.failCreate[input.BankAccountID]; err != nil {
		return domain.BankAccount{}, err
	}

	account := domain.BankAccount{
		ID:            fmt.Sprintf("local-%d", len(f.local)+1),
		UserID:        input.UserID,
		LinkID:        input.LinkID,
		BankAccountID: input.BankAccountID,
		Category:      input.Category,
		Type:          input.Type,
		Number:        input.Number,
		Name:          input.Name,
		Status:        domain.AccountStatusActive,
	}
	f.local = append(f.local, account)
	return account, nil
}

func (f *fakeProvider) createdIDs() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.creates...)
}

func (f *fakeProvider) localIDs(linkID string) []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	var ids []string
	for _, account := range f.local {
		if account.LinkID == linkID {
			ids = append(ids, account.BankAccountID)
		}
	}
	return ids
}

func remoteAccounts(linkID string, ids ...string) []domain.RemoteAccount {
	accounts := make([]domain.RemoteAccount, 0, len(ids))
	for _, id := range ids {
		accounts = append(accounts, domain.RemoteAccount{
			ID:          id,
			Link:        linkID,
			Institution: domain.Institution{Name: "Banco Inter", Type: "bank"},
			Category:    "CHECKING_ACCOUNT",
			Type:        "Conta Corrente",
			Number:      "0001-" + id,
			Name:        "Conta " + id,
			Status:      "enabled",
		})
	}
	return accounts
}
