//go:build tools

package tools

// Mocks under */mocks are generated with mockery; see .mockery.yaml.
import (
	_ "github.com/vektra/mockery/v2"
)
