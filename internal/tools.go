//go:build tools
// +build tools

// Package tools pins the code-generation and lint tool versions used by
// go:generate directives across the module, so `go mod tidy` keeps them in
// go.sum without needing them imported from runtime code.
package tools

import (
	_ "golang.org/x/lint/golint"
	_ "golang.org/x/tools/cmd/stringer"
)
