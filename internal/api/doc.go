// Package api handles incoming HTTP requests: it decodes and validates
// request bodies against explicit schemas, calls the services and shapes
// their results and errors into responses. Orchestration never starts for
// a request that fails validation.
package api
