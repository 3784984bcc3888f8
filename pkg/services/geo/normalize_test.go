package geo

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	t.Run("lowercases and strips diacritics", func(t *testing.T) {
		cases := map[string]string{
			"Lisboa":             "lisboa",
			"Setúbal":            "setubal",
			"Évora":              "evora",
			"BRAGANÇA":           "braganca",
			"Santarém":           "santarem",
			"Viana  do  Castelo": "viana do castelo",
		}
		for in, want := range cases {
			assert.Equal(t, want, Normalize(in), "input %q", in)
		}
	})

	t.Run("drops non-ascii remnants", func(t *testing.T) {
		assert.Equal(t, "acores", Normalize("Açores™"))
		assert.Equal(t, "madeira", Normalize("Madeira®"))
	})

	t.Run("symbols never reintroduce uppercase letters", func(t *testing.T) {
		out := Normalize("Açores™")
		assert.Equal(t, out, strings.ToLower(out))
		assert.Equal(t, out, Normalize(out))
	})

	t.Run("idempotent", func(t *testing.T) {
		inputs := []string{"Setúbal", "  PORTO ", "ilha da Madeira", "", "漢字 faro", "Açores™"}
		for _, in := range inputs {
			once := Normalize(in)
			assert.Equal(t, once, Normalize(once), "input %q", in)
		}
	})

	t.Run("trims and collapses whitespace", func(t *testing.T) {
		assert.Equal(t, "castelo branco", Normalize("  Castelo\tBranco  "))
	})
}
