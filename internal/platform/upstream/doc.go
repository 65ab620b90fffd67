// Package upstream implements the outbound call client shared by every
// backend the gateway talks to.
//
// A Client is configured once with a backend name, base URL, credential
// strategy, not-found policy and timeout, and is safe for concurrent use.
// Every call is sent to baseURL+path with no caching or deduplication, and
// every failure is returned as an *Error that carries the backend's status
// code and response body verbatim. Transport failures use StatusCode 0.
//
// Plain verb calls always treat 404 as an error. Existence checks use Find,
// which reports an absent resource as Lookup.Found == false when the client
// was configured with NotFoundAsAbsent.
package upstream
