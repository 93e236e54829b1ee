//go:build tools

package tools

// This file tracks versions of CLI tool dependencies.
// It is not compiled into the binary.
//
// Tools used by this module:
// - github.com/matryer/moq (service test mocks, see //go:generate lines)
// - github.com/pressly/goose/v3/cmd/goose (ad-hoc migration authoring; the
//   server and debatectl apply migrations from the embedded FS)
