package extract

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConcepts(t *testing.T) {
	files := []string{
		"src/auth/login.ts",
		"src/auth/session.ts",
		"src/payments/stripe.ts",
		"src/components/Button.tsx",
		"src/config.ts",
	}

	concepts := Concepts(files, 10)

	t.Run("matches path segments and stems", func(t *testing.T) {
		assert.Equal(t, []string{"src/auth/login.ts", "src/auth/session.ts"}, concepts["authentication"])
		assert.Equal(t, []string{"src/payments/stripe.ts"}, concepts["payment"])
		assert.Equal(t, []string{"src/config.ts"}, concepts["configuration"])
	})

	t.Run("zero-match concepts are absent, not empty", func(t *testing.T) {
		_, present := concepts["email"]
		assert.False(t, present)
		for name, hits := range concepts {
			assert.NotEmpty(t, hits, "concept %s has an empty list", name)
		}
	})

	t.Run("case-insensitive", func(t *testing.T) {
		got := Concepts([]string{"src/AUTH/Login.ts"}, 10)
		assert.Contains(t, got, "authentication")
	})
}

func TestConcepts_Cap(t *testing.T) {
	var files []string
	for i := 0; i < 25; i++ {
		files = append(files, fmt.Sprintf("src/auth/handler_%02d.ts", i))
	}

	concepts := Concepts(files, 10)
	assert.Len(t, concepts["authentication"], 10)
	// discovery order is the enumerator's order
	assert.Equal(t, "src/auth/handler_00.ts", concepts["authentication"][0])
}
