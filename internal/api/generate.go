// Package api contains the OpenAPI document for the account API and the
// server bindings generated from it.
package api

//go:generate go tool oapi-codegen -config oapi-codegen.yaml openapi.yaml
