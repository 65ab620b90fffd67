// Package service contains the gateway's use cases. Services compose calls
// to the identity, core and provider backends through small consumer-side
// interfaces, so they can be tested without any HTTP server.
//
// Every failure leaves a service as an *OperationError. Its Kind is one of
// the domain error sentinels and decides the response status; the wrapped
// *upstream.Error, when present, keeps the backend status and body available
// to callers through errors.As.
//
// The reconciliation loop in ListAndCreateAccounts is the only place where
// errors are recorded instead of returned.
package service
