package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeLike(t *testing.T) {
	tests := map[string]string{
		"go":       "go",
		"100%":     `100\%`,
		"snake_go": `snake\_go`,
		`a\b`:      `a\\b`,
		`%_\`:      `\%\_\\`,
	}

	for in, want := range tests {
		assert.Equal(t, want, EscapeLike(in), in)
	}
}

func TestContainsPattern(t *testing.T) {
	assert.Equal(t, "%react%", ContainsPattern("react"))
	assert.Equal(t, "%  %", ContainsPattern("  "))
	assert.Equal(t, `%c\_sharp%`, ContainsPattern("c_sharp"))
}
