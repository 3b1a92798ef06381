//go:build tools
// +build tools

// Pins mockgen in go.mod so `go generate ./contract` resolves the same version everywhere.
package datetime_lab

import (
	_ "go.uber.org/mock/mockgen"
)
