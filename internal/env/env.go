// Package env identifies the deployment environment.
package env

import (
	"os"
	"strings"

	"github.com/ekisa-team/voxlingo/internal/envvar"
)

// Environment is the deployment environment.
type Environment string

const (
	Development Environment = "development"
	Production  Environment = "production"
	Test        Environment = "test"
)

// FromEnv reads the environment from VOXLINGO_ENV. Unknown or empty values
// select Development.
func FromEnv() Environment {
	return Parse(os.Getenv(envvar.VoxlingoEnv))
}

// Parse maps a name to an Environment. "prod" is accepted as Production.
func Parse(s string) Environment {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "production", "prod":
		return Production
	case "test":
		return Test
	default:
		return Development
	}
}

// IsProduction reports whether e is Production.
func (e Environment) IsProduction() bool {
	return e == Production
}

func (e Environment) String() string {
	return string(e)
}
