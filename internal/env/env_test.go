package env

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ekisa-team/voxlingo/internal/envvar"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Environment
	}{
		{in: "", want: Development},
		{in: "development", want: Development},
		{in: "PRODUCTION", want: Production},
		{in: " prod ", want: Production},
		{in: "test", want: Test},
		{in: "staging", want: Development},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Parse(tt.in), "input %q", tt.in)
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv(envvar.VoxlingoEnv, "production")

	e := FromEnv()
	assert.Equal(t, Production, e)
	assert.True(t, e.IsProduction())
}
