package api

import (
	"testing"

	"github.com/porcentagem/api-gateway/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestUpdateBankAccountsRequest_ToDomain(t *testing.T) {
	req := UpdateBankAccountsRequest{Accounts: []AccountStatusRequest{
		{ID: "a1", Status: "ACTIVE"},
		{ID: "a2", Status: "INACTIVE"},
	}}

	assert.Equal(t, []domain.StatusUpdate{
		{ID: "a1", Status: domain.AccountStatusActive},
		{ID: "a2", Status: domain.AccountStatusInactive},
	}, req.toDomain())
}

func TestUpdateCategoryRequest_ToDomain(t *testing.T) {
	name := "Travel"
	patch := UpdateCategoryRequest{Name: &name}.toDomain()

	assert.Equal(t, &name, patch.Name)
	assert.False(t, patch.Empty())
	assert.True(t, UpdateCategoryRequest{}.toDomain().Empty())
}
