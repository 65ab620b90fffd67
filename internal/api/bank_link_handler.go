package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/porcentagem/api-gateway/internal/api/shared"
	"github.com/porcentagem/api-gateway/internal/domain"
	"github.com/porcentagem/api-gateway/internal/platform/logger"
	"github.com/porcentagem/api-gateway/internal/service"
)

// BankLinkHandler handles the /belvo routes.
type BankLinkHandler struct {
	bankLinkService service.BankLinkService
	logger          *slog.Logger
}

// NewBankLinkHandler creates a new BankLinkHandler
func NewBankLinkHandler(bankLinkService service.BankLinkService, logger *slog.Logger) *BankLinkHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for BankLinkHandler")
	}

	return &BankLinkHandler{
		bankLinkService: bankLinkService,
		logger:          logger.With(slog.String("component", "bank_link_handler")),
	}
}

// Register mounts the /belvo routes on r. Both /accounts/link/{id} routes
// share one parameter name: a user ID for GET and a link ID for DELETE.
func (h *BankLinkHandler) Register(r chi.Router) {
	r.Route("/belvo", func(r chi.Router) {
		r.Get("/widget-token", h.WidgetToken)
		r.Get("/links/{linkId}/users/{userId}/account-types", h.ReconcileAccounts)

		r.Route("/accounts", func(r chi.Router) {
			r.Post("/link", h.LinkAccount)
			r.Get("/link/{id}", h.ListUserLinks)
			r.Delete("/link/{id}", h.UnlinkBank)
			r.Patch("/batch", h.UpdateBankAccounts)
			r.Get("/belvo/{linkId}", h.ListRemoteAccounts)
			r.Post("/bank", h.CreateBankAccount)
			r.Get("/bank/userId/{userId}", h.ListBankAccountsByUser)
			r.Get("/bank/linkId/{linkId}", h.ListBankAccountsByLink)
		})
	})
}

// LinkAccount handles POST /belvo/accounts/link.
// It responds 201 with the stored link once its accounts are reconciled.
func (h *BankLinkHandler) LinkAccount(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req LinkAccountRequest
	if !decodeAndValidate(w, r, &req, log) {
		return
	}

	link, err := h.bankLinkService.LinkAccount(r.Context(), req.UserID, req.LinkID, req.InstitutionName)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, link)
}

// ReconcileAccounts handles GET /belvo/links/{linkId}/users/{userId}/account-types.
// It runs reconciliation for the link and responds with the report.
func (h *BankLinkHandler) ReconcileAccounts(w http.ResponseWriter, r *http.Request) {
	linkID, ok := pathParam(w, r, "linkId", "required")
	if !ok {
		return
	}
	userID, ok := pathParam(w, r, "userId", "required,uuid")
	if !ok {
		return
	}

	report, err := h.bankLinkService.ListAndCreateAccounts(r.Context(), linkID, userID)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, report)
}

// UpdateBankAccounts handles PATCH /belvo/accounts/batch.
func (h *BankLinkHandler) UpdateBankAccounts(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req UpdateBankAccountsRequest
	if !decodeAndValidate(w, r, &req, log) {
		return
	}

	accounts, err := h.bankLinkService.UpdateBankAccounts(r.Context(), req.toDomain())
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, shared.DataResponse[[]domain.BankAccount]{Data: accounts})
}

// WidgetToken handles GET /belvo/widget-token.
func (h *BankLinkHandler) WidgetToken(w http.ResponseWriter, r *http.Request) {
	token, err := h.bankLinkService.GenerateWidgetToken(r.Context())
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, token)
}

// ListRemoteAccounts handles GET /belvo/accounts/belvo/{linkId}.
func (h *BankLinkHandler) ListRemoteAccounts(w http.ResponseWriter, r *http.Request) {
	linkID, ok := pathParam(w, r, "linkId", "required")
	if !ok {
		return
	}

	accounts, err := h.bankLinkService.ListRemoteAccounts(r.Context(), linkID)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, accounts)
}

// ListUserLinks handles GET /belvo/accounts/link/{id}, where id is a user ID.
func (h *BankLinkHandler) ListUserLinks(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathParam(w, r, "id", "required")
	if !ok {
		return
	}

	links, err := h.bankLinkService.ListUserLinks(r.Context(), userID)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, shared.DataResponse[[]domain.Link]{Data: links})
}

// UnlinkBank handles DELETE /belvo/accounts/link/{id}, where id is a link ID.
func (h *BankLinkHandler) UnlinkBank(w http.ResponseWriter, r *http.Request) {
	linkID, ok := pathParam(w, r, "id", "required")
	if !ok {
		return
	}

	link, err := h.bankLinkService.UnlinkBank(r.Context(), linkID)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, shared.DataResponse[domain.Link]{Data: link})
}

// CreateBankAccount handles POST /belvo/accounts/bank.
func (h *BankLinkHandler) CreateBankAccount(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateBankAccountRequest
	if !decodeAndValidate(w, r, &req, log) {
		return
	}

	account, err := h.bankLinkService.CreateBankAccount(r.Context(), req.toDomain())
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, shared.DataResponse[domain.BankAccount]{Data: account})
}

// ListBankAccountsByUser handles GET /belvo/accounts/bank/userId/{userId}.
func (h *BankLinkHandler) ListBankAccountsByUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathParam(w, r, "userId", "required")
	if !ok {
		return
	}

	accounts, err := h.bankLinkService.ListBankAccountsByUser(r.Context(), userID)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, accounts)
}

// ListBankAccountsByLink handles GET /belvo/accounts/bank/linkId/{linkId}.
func (h *BankLinkHandler) ListBankAccountsByLink(w http.ResponseWriter, r *http.Request) {
	linkID, ok := pathParam(w, r, "linkId", "required")
	if !ok {
		return
	}

	accounts, err := h.bankLinkService.ListBankAccountsByLink(r.Context(), linkID)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, accounts)
}
