// Package config handles configuration loading, parsing, and validation
// from environment variables and an optional config file. It provides type-safe
// access to the gateway's settings, most importantly the base URLs of the
// identity, core and bank-aggregation backends.
package config
