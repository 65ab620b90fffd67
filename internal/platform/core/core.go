// Package core adapts the core domain backend, which owns users and
// categories. Its responses are bare JSON documents.
package core

import (
	"context"
	"net/url"

	"github.com/porcentagem/api-gateway/internal/domain"
	"github.com/porcentagem/api-gateway/internal/platform/upstream"
)

// Client calls the core backend. The underlying upstream client should be
// configured with upstream.NotFoundAsAbsent so FindUser can report absence.
type Client struct {
	http *upstream.Client
}

// New wraps an upstream client for the core backend.
func New(http *upstream.Client) *Client {
	return &Client{http: http}
}

// FindUser looks a user up by ID. A missing user is reported as
// Lookup.Found == false, not as an error.
func (c *Client) FindUser(ctx context.Context, userID string) (upstream.Lookup[domain.User], error) {
	return upstream.Find[domain.User](ctx, c.http, "/users/"+url.PathEscape(userID))
}

// CreateCategory creates a category.
func (c *Client) CreateCategory(ctx context.Context, input domain.CategoryInput) (domain.Category, error) {
	var category domain.Category
	err := c.http.Post(ctx, "/categories", input, &category)
	return category, err
}

// ListCategories returns every category.
func (c *Client) ListCategories(ctx context.Context) ([]domain.Category, error) {
	categories := []domain.Category{}
	err := c.http.Get(ctx, "/categories", &categories)
	return categories, err
}

// GetCategory returns a single category. A 404 is returned as an error.
func (c *Client) GetCategory(ctx context.Context, id string) (domain.Category, error) {
	var category domain.Category
	err := c.http.Get(ctx, categoryPath(id), &category)
	return category, err
}

// UpdateCategory applies a partial update and returns the stored category.
func (c *Client) UpdateCategory(ctx context.Context, id string, patch domain.CategoryPatch) (domain.Category, error) {
	var category domain.Category
	err := c.http.Patch(ctx, categoryPath(id), patch, &category)
	return category, err
}

// DeleteCategory removes a category.
func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	return c.http.Delete(ctx, categoryPath(id), nil)
}

func categoryPath(id string) string {
	return "/categories/" + url.PathEscape(id)
}
