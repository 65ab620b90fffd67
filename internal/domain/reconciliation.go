package domain

// ReconciliationResult is what happened to one remote account during reconciliation.
type ReconciliationResult string

// Reconciliation results.
const (
	ReconciliationCreated ReconciliationResult = "created"
	ReconciliationSkipped ReconciliationResult = "skipped"
	ReconciliationFailed  ReconciliationResult = "failed"
)

// AccountOutcome records the result for a single remote account.
type AccountOutcome struct {
	BankAccountID  string               `json:"bankAccountId"`
	Result         ReconciliationResult `json:"result"`
	UpstreamStatus int                  `json:"upstreamStatus,omitempty"`
	Err            error                `json:"-"`
}

// ReconciliationReport is the fold of every outcome of one reconciliation run,
// in the order the provider listed the accounts.
type ReconciliationReport struct {
	LinkID   string           `json:"linkId"`
	UserID   string           `json:"userId"`
	Outcomes []AccountOutcome `json:"outcomes"`
	Created  int              `json:"created"`
	Skipped  int              `json:"skipped"`
	Failed   int              `json:"failed"`
}

// NewReconciliationReport returns an empty report for a link.
func NewReconciliationReport(linkID, userID string) *ReconciliationReport {
	return &ReconciliationReport{
		LinkID:   linkID,
		UserID:   userID,
		Outcomes: []AccountOutcome{},
	}
}

// Record appends an outcome and updates the counts.
func (r *ReconciliationReport) Record(outcome AccountOutcome) {
	r.Outcomes = append(r.Outcomes, outcome)
	switch outcome.Result {
	case ReconciliationCreated:
		r.Created++
	case ReconciliationSkipped:
		r.Skipped++
	case ReconciliationFailed:
		r.Failed++
	}
}
