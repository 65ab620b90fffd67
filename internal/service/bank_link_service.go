package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/porcentagem/api-gateway/internal/domain"
	"github.com/porcentagem/api-gateway/internal/platform/logger"
	"github.com/porcentagem/api-gateway/internal/platform/metrics"
	"github.com/porcentagem/api-gateway/internal/platform/upstream"
	"github.com/porcentagem/api-gateway/internal/redact"
)

// UserDirectory checks user existence on the core backend.
type UserDirectory interface {
	FindUser(ctx context.Context, userID string) (upstream.Lookup[domain.User], error)
}

// AccountProvider is the provider backend as seen by the bank link service.
type AccountProvider interface {
	WidgetToken(ctx context.Context) (string, error)
	ListRemoteAccounts(ctx context.Context, linkID string) ([]domain.RemoteAccount, error)
	RegisterLink(ctx context.Context, userID, linkID, institutionName string) (domain.Link, error)
	ListUserLinks(ctx context.Context, userID string) ([]domain.Link, error)
	DeleteLink(ctx context.Context, linkID string) (domain.Link, error)
	CreateBankAccount(ctx context.Context, input domain.BankAccountInput) (domain.BankAccount, error)
	ListBankAccountsByUser(ctx context.Context, userID string) ([]domain.BankAccount, error)
	ListBankAccountsByLink(ctx context.Context, linkID string) ([]domain.BankAccount, error)
	UpdateAccountStatuses(ctx context.Context, updates []domain.StatusUpdate) ([]domain.BankAccount, error)
}

// BankLinkService links bank connections to users and keeps the local
// account records in step with the provider.
type BankLinkService interface {
	// LinkAccount verifies the user, registers the link with the provider and
	// reconciles the link's accounts before returning the stored link.
	// Nothing is rolled back when a later step fails.
	LinkAccount(ctx context.Context, userID, linkID, institutionName string) (domain.Link, error)

	// ListAndCreateAccounts creates a local account for every remote account
	// of the link that has none yet. Individual creation failures are recorded
	// in the report; only listing failures are returned.
	ListAndCreateAccounts(ctx context.Context, linkID, userID string) (*domain.ReconciliationReport, error)

	// UpdateBankAccounts sends every status change in one provider call.
	UpdateBankAccounts(ctx context.Context, updates []domain.StatusUpdate) ([]domain.BankAccount, error)

	GenerateWidgetToken(ctx context.Context) (domain.WidgetToken, error)
	ListRemoteAccounts(ctx context.Context, linkID string) ([]domain.RemoteAccount, error)
	ListUserLinks(ctx context.Context, userID string) ([]domain.Link, error)
	UnlinkBank(ctx context.Context, linkID string) (domain.Link, error)
	CreateBankAccount(ctx context.Context, input domain.BankAccountInput) (domain.BankAccount, error)
	ListBankAccountsByUser(ctx context.Context, userID string) ([]domain.BankAccount, error)
	ListBankAccountsByLink(ctx context.Context, linkID string) ([]domain.BankAccount, error)
}

type bankLinkServiceImpl struct {
	users    UserDirectory
	provider AccountProvider
	metrics  *metrics.Recorder
	logger   *slog.Logger
	timeFunc func() time.Time
}

// NewBankLinkService creates a BankLinkService.
// It returns an error if any of the required dependencies are nil.
// A nil recorder disables reconciliation metrics.
func NewBankLinkService(
	users UserDirectory,
	provider AccountProvider,
	recorder *metrics.Recorder,
	logger *slog.Logger,
) (BankLinkService, error) {
	if users == nil {
		return nil, fmt.Errorf("%w: users cannot be nil", domain.ErrValidation)
	}
	if provider == nil {
		return nil, fmt.Errorf("%w: provider cannot be nil", domain.ErrValidation)
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &bankLinkServiceImpl{
		users:    users,
		provider: provider,
		metrics:  recorder,
		logger:   logger.With(slog.String("component", "bank_link_service")),
		timeFunc: time.Now,
	}, nil
}

// LinkAccount implements BankLinkService.LinkAccount.
func (s *bankLinkServiceImpl) LinkAccount(
	ctx context.Context,
	userID, linkID, institutionName string,
) (domain.Link, error) {
	const op = "LinkAccount"
	// Once started, the chain runs to completion even if the caller goes away.
	ctx = context.WithoutCancel(ctx)
	log := logger.FromContextOrDefault(ctx, s.logger).With(
		slog.String("user_id", userID),
		slog.String("link_id", linkID),
	)

	log.Info("linking bank account", slog.String("institution", institutionName))

	lookup, err := s.users.FindUser(ctx, userID)
	if err != nil {
		log.Error("failed to look up user", slog.String("error", redact.Error(err)))
		return domain.Link{}, fail(op, "failed to verify user", err)
	}
	if !lookup.Found {
		log.Warn("user not found in core backend")
		return domain.Link{}, NewOperationError(op, domain.ErrNotFound, "user not found", nil)
	}

	link, err := s.provider.RegisterLink(ctx, userID, linkID, institutionName)
	if err != nil {
		log.Error("failed to register link", slog.String("error", redact.Error(err)))
		return domain.Link{}, fail(op, "failed to link account", err)
	}

	report, err := s.ListAndCreateAccounts(ctx, linkID, userID)
	if err != nil {
		log.Error("link registered but account reconciliation failed",
			slog.String("error", redact.Error(err)))
		return domain.Link{}, err
	}

	log.Info("bank account linked",
		slog.String("id", link.ID),
		slog.Int("accounts_created", report.Created),
		slog.Int("accounts_failed", report.Failed))

	return link, nil
}

// ListAndCreateAccounts implements BankLinkService.ListAndCreateAccounts.
func (s *bankLinkServiceImpl) ListAndCreateAccounts(
	ctx context.Context,
	linkID, userID string,
) (*domain.ReconciliationReport, error) {
	const op = "ListAndCreateAccounts"
	// A created account must not be reported failed because the caller left.
	ctx = context.WithoutCancel(ctx)
	log := logger.FromContextOrDefault(ctx, s.logger).With(
		slog.String("user_id", userID),
		slog.String("link_id", linkID),
	)

	remote, err := s.provider.ListRemoteAccounts(ctx, linkID)
	if err != nil {
		log.Error("failed to list provider accounts", slog.String("error", redact.Error(err)))
		return nil, fail(op, "failed to list and create accounts", err)
	}

	local, err := s.provider.ListBankAccountsByLink(ctx, linkID)
	if err != nil {
		log.Error("failed to list local bank accounts", slog.String("error", redact.Error(err)))
		return nil, fail(op, "failed to list and create accounts", err)
	}

	known := make(map[string]struct{}, len(local))
	for _, account := range local {
		known[account.BankAccountID] = struct{}{}
	}

	log.Debug("reconciling accounts",
		slog.Int("remote_count", len(remote)),
		slog.Int("local_count", len(local)))

	report := domain.NewReconciliationReport(linkID, userID)
	for _, account := range remote {
		if _, ok := known[account.ID]; ok {
			report.Record(domain.AccountOutcome{
				BankAccountID: account.ID,
				Result:        domain.ReconciliationSkipped,
			})
			continue
		}

		if _, err := s.provider.CreateBankAccount(ctx, domain.NewBankAccountInput(account, userID, linkID)); err != nil {
			log.Error("failed to create bank account",
				slog.String("bank_account_id", account.ID),
				slog.String("error", redact.Error(err)))
			report.Record(domain.AccountOutcome{
				BankAccountID:  account.ID,
				Result:         domain.ReconciliationFailed,
				UpstreamStatus: upstream.StatusCode(err),
				Err:            err,
			})
			continue
		}

		known[account.ID] = struct{}{}
		report.Record(domain.AccountOutcome{
			BankAccountID: account.ID,
			Result:        domain.ReconciliationCreated,
		})
	}

	s.metrics.AddReconciled(string(domain.ReconciliationCreated), report.Created)
	s.metrics.AddReconciled(string(domain.ReconciliationSkipped), report.Skipped)
	s.metrics.AddReconciled(string(domain.ReconciliationFailed), report.Failed)

	log.Info("accounts reconciled",
		slog.Int("created", report.Created),
		slog.Int("skipped", report.Skipped),
		slog.Int("failed", report.Failed))

	return report, nil
}

// UpdateBankAccounts implements BankLinkService.UpdateBankAccounts.
func (s *bankLinkServiceImpl) UpdateBankAccounts(
	ctx context.Context,
	updates []domain.StatusUpdate,
) ([]domain.BankAccount, error) {
	const op = "UpdateBankAccounts"
	log := logger.FromContextOrDefault(ctx, s.logger)

	if len(updates) == 0 {
		return nil, NewOperationError(op, domain.ErrValidation, "no accounts to update", nil)
	}
	for _, u := range updates {
		if !u.Status.Valid() {
			_, err := domain.ParseAccountStatus(string(u.Status))
			return nil, NewOperationError(op, domain.ErrValidation, "invalid account status", err)
		}
	}

	accounts, err := s.provider.UpdateAccountStatuses(ctx, updates)
	if err != nil {
		log.Error("failed to update bank accounts in batch",
			slog.Int("count", len(updates)),
			slog.String("error", redact.Error(err)))
		return nil, fail(op, "failed to update bank accounts", err)
	}

	log.Info("bank accounts updated", slog.Int("count", len(updates)))
	return accounts, nil
}

// GenerateWidgetToken implements BankLinkService.GenerateWidgetToken.
// Any provider failure is reported as unauthorized.
func (s *bankLinkServiceImpl) GenerateWidgetToken(ctx context.Context) (domain.WidgetToken, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	token, err := s.provider.WidgetToken(ctx)
	if err != nil {
		log.Error("failed to generate widget token", slog.String("error", redact.Error(err)))
		return domain.WidgetToken{}, NewOperationError("GenerateWidgetToken",
			domain.ErrUnauthorized, "failed to generate widget token", err)
	}

	log.Debug("widget token generated")
	return domain.WidgetToken{Token: token, GeneratedAt: s.timeFunc().UTC()}, nil
}

// ListRemoteAccounts implements BankLinkService.ListRemoteAccounts.
func (s *bankLinkServiceImpl) ListRemoteAccounts(ctx context.Context, linkID string) ([]domain.RemoteAccount, error) {
	accounts, err := s.provider.ListRemoteAccounts(ctx, linkID)
	if err != nil {
		s.logFailure(ctx, "failed to list provider accounts", err, slog.String("link_id", linkID))
		return nil, fail("ListRemoteAccounts", "failed to list provider accounts", err)
	}
	return accounts, nil
}

// ListUserLinks implements BankLinkService.ListUserLinks.
func (s *bankLinkServiceImpl) ListUserLinks(ctx context.Context, userID string) ([]domain.Link, error) {
	links, err := s.provider.ListUserLinks(ctx, userID)
	if err != nil {
		s.logFailure(ctx, "failed to list user links", err, slog.String("user_id", userID))
		return nil, fail("ListUserLinks", "failed to list user links", err)
	}
	return links, nil
}

// UnlinkBank implements BankLinkService.UnlinkBank.
func (s *bankLinkServiceImpl) UnlinkBank(ctx context.Context, linkID string) (domain.Link, error) {
	link, err := s.provider.DeleteLink(ctx, linkID)
	if err != nil {
		s.logFailure(ctx, "failed to remove bank link", err, slog.String("link_id", linkID))
		if upstream.IsNotFound(err) {
			return domain.Link{}, NewOperationError("UnlinkBank", domain.ErrNotFound, "link not found", err)
		}
		return domain.Link{}, fail("UnlinkBank", "failed to remove bank link", err)
	}

	logger.FromContextOrDefault(ctx, s.logger).Info("bank link removed", slog.String("link_id", linkID))
	return link, nil
}

// CreateBankAccount implements BankLinkService.CreateBankAccount.
func (s *bankLinkServiceImpl) CreateBankAccount(
	ctx context.Context,
	input domain.BankAccountInput,
) (domain.BankAccount, error) {
	account, err := s.provider.CreateBankAccount(ctx, input)
	if err != nil {
		s.logFailure(ctx, "failed to create bank account", err,
			slog.String("link_id", input.LinkID),
			slog.String("bank_account_id", input.BankAccountID))
		return domain.BankAccount{}, fail("CreateBankAccount", "failed to create bank account", err)
	}
	return account, nil
}

// ListBankAccountsByUser implements BankLinkService.ListBankAccountsByUser.
func (s *bankLinkServiceImpl) ListBankAccountsByUser(ctx context.Context, userID string) ([]domain.BankAccount, error) {
	accounts, err := s.provider.ListBankAccountsByUser(ctx, userID)
	if err != nil {
		s.logFailure(ctx, "failed to list bank accounts", err, slog.String("user_id", userID))
		return nil, fail("ListBankAccountsByUser", "failed to list bank accounts", err)
	}
	return accounts, nil
}

// ListBankAccountsByLink implements BankLinkService.ListBankAccountsByLink.
func (s *bankLinkServiceImpl) ListBankAccountsByLink(ctx context.Context, linkID string) ([]domain.BankAccount, error) {
	accounts, err := s.provider.ListBankAccountsByLink(ctx, linkID)
	if err != nil {
		s.logFailure(ctx, "failed to list bank accounts", err, slog.String("link_id", linkID))
		return nil, fail("ListBankAccountsByLink", "failed to list bank accounts", err)
	}
	return accounts, nil
}

func (s *bankLinkServiceImpl) logFailure(ctx context.Context, msg string, err error, attrs ...any) {
	attrs = append(attrs, slog.String("error", redact.Error(err)))
	logger.FromContextOrDefault(ctx, s.logger).Error(msg, attrs...)
}
