//go:build tools

package tools

// This file documents the CLI tooling this module relies on.
// It is not compiled into the binary.
//
// - github.com/pressly/goose/v3/cmd/goose is tracked via the tool
//   directive in go.mod (migrations).
// - Mocks are generated with github.com/matryer/moq (see the
//   //go:generate directives next to each service interface) and
//   committed; install it with `go install github.com/matryer/moq@latest`
//   when regenerating.
