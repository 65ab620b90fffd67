package api

import "github.com/porcentagem/api-gateway/internal/domain"

// LinkAccountRequest is the body of POST /belvo/accounts/link.
type LinkAccountRequest struct {
	UserID          string `json:"userId"          validate:"required,uuid"`
	LinkID          string `json:"linkId"          validate:"required"`
	InstitutionName string `json:"institutionName" validate:"required"`
}

// AccountStatusRequest is one entry of a batch status update.
type AccountStatusRequest struct {
	ID     string `json:"id"     validate:"required"`
	Status string `json:"status" validate:"required,oneof=ACTIVE INACTIVE"`
}

// UpdateBankAccountsRequest is the body of PATCH /belvo/accounts/batch.
type UpdateBankAccountsRequest struct {
	Accounts []AccountStatusRequest `json:"accounts" validate:"required,min=1,dive"`
}

// CreateBankAccountRequest is the body of POST /belvo/accounts/bank.
type CreateBankAccountRequest struct {
	UserID        string `json:"userId"        validate:"required"`
	LinkID        string `json:"linkId"        validate:"required"`
	BankAccountID string `json:"bankAccountId" validate:"required"`
	Category      string `json:"category"      validate:"required"`
	Type          string `json:"type"          validate:"required"`
	Number        string `json:"number"        validate:"required"`
	Name          string `json:"name"          validate:"required"`
}

// CreateCategoryRequest is the body of POST /core/categories.
type CreateCategoryRequest struct {
	Name        string `json:"name"        validate:"required,min=2,max=50"`
	Color       string `json:"color"       validate:"required"`
	Icon        string `json:"icon"        validate:"required"`
	Description string `json:"description" validate:"required"`
}

// UpdateCategoryRequest is the body of PATCH /core/categories/{id}.
type UpdateCategoryRequest struct {
	Name        *string `json:"name"        validate:"omitnil,min=2,max=50"`
	Color       *string `json:"color"       validate:"omitnil,min=1"`
	Icon        *string `json:"icon"        validate:"omitnil,min=1"`
	Description *string `json:"description" validate:"omitnil,min=1"`
}

func (r UpdateBankAccountsRequest) toDomain() []domain.StatusUpdate {
	updates := make([]domain.StatusUpdate, 0, len(r.Accounts))
	for _, a := range r.Accounts {
		updates = append(updates, domain.StatusUpdate{ID: a.ID, Status: domain.AccountStatus(a.Status)})
	}
	return updates
}

func (r CreateBankAccountRequest) toDomain() domain.BankAccountInput {
	return domain.BankAccountInput{
		UserID:        r.UserID,
		LinkID:        r.LinkID,
		BankAccountID: r.BankAccountID,
		Category:      r.Category,
		Type:          r.Type,
		Number:        r.Number,
		Name:          r.Name,
	}
}

func (r CreateCategoryRequest) toDomain() domain.CategoryInput {
	return domain.CategoryInput{
		Name:        r.Name,
		Color:       r.Color,
		Icon:        r.Icon,
		Description: r.Description,
	}
}

func (r UpdateCategoryRequest) toDomain() domain.CategoryPatch {
	return domain.CategoryPatch{
		Name:        r.Name,
		Color:       r.Color,
		Icon:        r.Icon,
		Description: r.Description,
	}
}
