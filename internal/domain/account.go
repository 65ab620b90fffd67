package domain

import (
	"fmt"
	"time"
)

// AccountStatus is the gateway's status vocabulary for bank accounts.
type AccountStatus string

// Account statuses accepted by the batch status update.
const (
	AccountStatusActive   AccountStatus = "ACTIVE"
	AccountStatusInactive AccountStatus = "INACTIVE"
)

// Provider status values.
const (
	ProviderStatusEnabled  = "enabled"
	ProviderStatusDisabled = "disabled"
)

// Valid reports whether s is a known status.
func (s AccountStatus) Valid() bool {
	return s == AccountStatusActive || s == AccountStatusInactive
}

// ProviderStatus translates s into the provider's vocabulary.
// Anything other than ACTIVE is sent as disabled.
func (s AccountStatus) ProviderStatus() string {
	if s == AccountStatusActive {
		return ProviderStatusEnabled
	}
	return ProviderStatusDisabled
}

// ParseAccountStatus validates a status string.
func ParseAccountStatus(s string) (AccountStatus, error) {
	status := AccountStatus(s)
	if !status.Valid() {
		return "", fmt.Errorf("%w: account status must be ACTIVE or INACTIVE, got %q", ErrValidation, s)
	}
	return status, nil
}

// Institution identifies the bank behind a remote account.
type Institution struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// RemoteAccount is an account as reported by the provider for a link.
// The provider is the source of truth; the gateway never modifies these.
type RemoteAccount struct {
	ID          string      `json:"id"`
	Link        string      `json:"link"`
	Institution Institution `json:"institution"`
	Category    string      `json:"category"`
	Type        string      `json:"type"`
	Number      string      `json:"number"`
	Name        string      `json:"name"`
	Status      string      `json:"status,omitempty"`
}

// BankAccount is the local record of a remote account.
// BankAccountID holds the RemoteAccount.ID it mirrors.
type BankAccount struct {
	ID            string        `json:"id"`
	UserID        string        `json:"userId"`
	LinkID        string        `json:"linkId"`
	BankAccountID string        `json:"bankAccountId"`
	Category      string        `json:"category"`
	Type          string        `json:"type"`
	Number        string        `json:"number"`
	Name          string        `json:"name"`
	Status        AccountStatus `json:"status,omitempty"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

// BankAccountInput is the payload for creating a local bank account.
type BankAccountInput struct {
	UserID        string `json:"userId"`
	LinkID        string `json:"linkId"`
	BankAccountID string `json:"bankAccountId"`
	Category      string `json:"category"`
	Type          string `json:"type"`
	Number        string `json:"number"`
	Name          string `json:"name"`
}

// NewBankAccountInput builds the creation payload that mirrors a remote account.
func NewBankAccountInput(remote RemoteAccount, userID, linkID string) BankAccountInput {
	return BankAccountInput{
		UserID:        userID,
		LinkID:        linkID,
		BankAccountID: remote.ID,
		Category:      remote.Category,
		Type:          remote.Type,
		Number:        remote.Number,
		Name:          remote.Name,
	}
}

// StatusUpdate requests a status change for one account.
type StatusUpdate struct {
	ID     string        `json:"id"`
	Status AccountStatus `json:"status"`
}
