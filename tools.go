//go:build tools
// +build tools

// Package tools tracks the code generators used by go:generate.
package intentai

import (
	_ "go.uber.org/mock/mockgen"
)
