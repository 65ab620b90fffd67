// Package domain contains the entities the gateway moves between its
// backends: users, bank links, provider accounts, local bank accounts and
// categories, together with the error taxonomy every operation reports in.
// It has no knowledge of HTTP or of any particular backend.
package domain
