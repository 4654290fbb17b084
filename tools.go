//go:build tools

package tools

// This file tracks versions of CLI tool dependencies.
// It is not compiled into the binary.
//
// Tools used by go:generate and the Makefile-less workflow:
// - github.com/matryer/moq (consumer interface mocks in *_mock_test.go)
// - github.com/pressly/goose/v3/cmd/goose (ad-hoc migration status; the
//   server and `brandvoice migrate` apply migrations from the embedded FS)
