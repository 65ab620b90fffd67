// Package belvo adapts the bank-aggregation provider backend. Every provider
// response wraps its payload in a {"data": ...} envelope, which this package
// unwraps so callers only see domain types.
package belvo

import (
	"context"
	"net/url"

	"github.com/porcentagem/api-gateway/internal/domain"
	"github.com/porcentagem/api-gateway/internal/platform/upstream"
)

// Envelope is the provider's response wrapper.
type Envelope[T any] struct {
	Data  T      `json:"data"`
	Token string `json:"token,omitempty"`
}

type registerLinkRequest struct {
	UserID          string `json:"userId"`
	LinkID          string `json:"linkId"`
	InstitutionName string `json:"institutionName"`
}

type statusChange struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type batchUpdateRequest struct {
	Accounts []statusChange `json:"accounts"`
}

// Client calls the provider backend.
type Client struct {
	http *upstream.Client
}

// New wraps an upstream client for the provider backend.
func New(http *upstream.Client) *Client {
	return &Client{http: http}
}

// WidgetToken requests a token for the bank connection widget. The provider
// returns it at the top level of the envelope; data.token is accepted too.
func (c *Client) WidgetToken(ctx context.Context) (string, error) {
	var env Envelope[struct {
		Token string `json:"token"`
	}]
	if err := c.http.Get(ctx, "/widget/token", &env); err != nil {
		return "", err
	}
	if env.Token != "" {
		return env.Token, nil
	}
	return env.Data.Token, nil
}

// ListRemoteAccounts returns the provider's accounts for a link, in provider order.
func (c *Client) ListRemoteAccounts(ctx context.Context, linkID string) ([]domain.RemoteAccount, error) {
	var env Envelope[[]domain.RemoteAccount]
	if err := c.http.Get(ctx, "/accounts/belvo/"+url.PathEscape(linkID), &env); err != nil {
		return nil, err
	}
	return nonNil(env.Data), nil
}

// RegisterLink records a new link for a user.
func (c *Client) RegisterLink(ctx context.Context, userID, linkID, institutionName string) (domain.Link, error) {
	var env Envelope[domain.Link]
	err := c.http.Post(ctx, "/accounts/link", registerLinkRequest{
		UserID:          userID,
		LinkID:          linkID,
		InstitutionName: institutionName,
	}, &env)
	return env.Data, err
}

// ListUserLinks returns every link registered for a user.
func (c *Client) ListUserLinks(ctx context.Context, userID string) ([]domain.Link, error) {
	var env Envelope[[]domain.Link]
	if err := c.http.Get(ctx, "/accounts/link/"+url.PathEscape(userID), &env); err != nil {
		return nil, err
	}
	return nonNil(env.Data), nil
}

// DeleteLink removes a link and returns it as it was stored.
func (c *Client) DeleteLink(ctx context.Context, linkID string) (domain.Link, error) {
	var env Envelope[domain.Link]
	err := c.http.Delete(ctx, "/accounts/link/"+url.PathEscape(linkID), &env)
	return env.Data, err
}

// CreateBankAccount creates a local bank account.
func (c *Client) CreateBankAccount(ctx context.Context, input domain.BankAccountInput) (domain.BankAccount, error) {
	var env Envelope[domain.BankAccount]
	err := c.http.Post(ctx, "/accounts/bank", input, &env)
	return env.Data, err
}

// ListBankAccountsByUser returns the local bank accounts of a user.
func (c *Client) ListBankAccountsByUser(ctx context.Context, userID string) ([]domain.BankAccount, error) {
	return c.listBankAccounts(ctx, "/accounts/bank/userId/"+url.PathEscape(userID))
}

// ListBankAccountsByLink returns the local bank accounts created for a link.
func (c *Client) ListBankAccountsByLink(ctx context.Context, linkID string) ([]domain.BankAccount, error) {
	return c.listBankAccounts(ctx, "/accounts/bank/linkId/"+url.PathEscape(linkID))
}

func (c *Client) listBankAccounts(ctx context.Context, path string) ([]domain.BankAccount, error) {
	var env Envelope[[]domain.BankAccount]
	if err := c.http.Get(ctx, path, &env); err != nil {
		return nil, err
	}
	return nonNil(env.Data), nil
}

// UpdateAccountStatuses sends every status change in a single batch request,
// translated to the provider's enabled/disabled vocabulary.
func (c *Client) UpdateAccountStatuses(ctx context.Context, updates []domain.StatusUpdate) ([]domain.BankAccount, error) {
	req := batchUpdateRequest{Accounts: make([]statusChange, 0, len(updates))}
	for _, u := range updates {
		req.Accounts = append(req.Accounts, statusChange{ID: u.ID, Status: u.Status.ProviderStatus()})
	}

	var env Envelope[[]domain.BankAccount]
	if err := c.http.Patch(ctx, "/accounts/batch", req, &env); err != nil {
		return nil, err
	}
	return nonNil(env.Data), nil
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
