package csv

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/ht-tools/housing-atlas/pkg/models/domain"
	"github.com/ht-tools/housing-atlas/pkg/services/satisfaction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFixture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "survey.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestStore_GetRows(t *testing.T) {
	ctx := context.Background()
	dict := satisfaction.DefaultReasonDictionary()

	t.Run("parses a full export", func(t *testing.T) {
		content := "housing_situation,satisfaction_level,rendimento-anual,rent_burden,distrito,rendimento_numerical,reason_pago-demasiado,reason_vivo-longe\n" +
			"Renting,Very Satisfied,20k-30k,≤30% (Affordable),Lisboa,25000,true,false\n" +
			"Owning,Dissatisfied,30k-50k,,Évora,42000,false,1\n"
		store := NewStore(writeFixture(t, content), dict)

		rows, err := store.GetRows(ctx)
		require.NoError(t, err)
		require.Len(t, rows, 2)

		first := rows[0]
		assert.Equal(t, domain.SituationRenting, first.Situation)
		assert.Equal(t, domain.VerySatisfied, first.Satisfaction)
		assert.Equal(t, "Lisboa", first.District)
		require.NotNil(t, first.Income)
		assert.Equal(t, 25000.0, *first.Income)
		assert.True(t, first.Reasons["reason_pago-demasiado"])
		assert.False(t, first.Reasons["reason_vivo-longe"])

		second := rows[1]
		assert.Equal(t, "Évora", second.District)
		assert.True(t, second.Reasons["reason_vivo-longe"], "numeric truthy indicator")
	})

	t.Run("columns outside header order still resolve", func(t *testing.T) {
		content := "distrito,satisfaction_level,housing_situation\n" +
			"Porto,Neutral,Other\n"
		store := NewStore(writeFixture(t, content), dict)

		rows, err := store.GetRows(ctx)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "Porto", rows[0].District)
		assert.Equal(t, domain.SituationOther, rows[0].Situation)
	})

	t.Run("empty income stays missing", func(t *testing.T) {
		content := "satisfaction_level,rendimento_numerical\n" +
			"Neutral,\n" +
			"Satisfied,18000\n"
		store := NewStore(writeFixture(t, content), dict)

		rows, err := store.GetRows(ctx)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Nil(t, rows[0].Income)
		require.NotNil(t, rows[1].Income)
		assert.Equal(t, 18000.0, *rows[1].Income)
	})

	t.Run("undeclared reason columns are ignored", func(t *testing.T) {
		content := "satisfaction_level,reason_legacy-field\nNeutral,true\n"
		store := NewStore(writeFixture(t, content), dict)

		rows, err := store.GetRows(ctx)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.False(t, rows[0].Reasons["reason_legacy-field"])
	})

	t.Run("bad income fails loudly", func(t *testing.T) {
		content := "satisfaction_level,rendimento_numerical\nNeutral,lots\n"
		store := NewStore(writeFixture(t, content), dict)

		_, err := store.GetRows(ctx)
		assert.Error(t, err)
	})

	t.Run("header-only file yields no rows", func(t *testing.T) {
		store := NewStore(writeFixture(t, "satisfaction_level,distrito\n"), dict)
		rows, err := store.GetRows(ctx)
		require.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("missing file errors", func(t *testing.T) {
		store := NewStore("/does/not/exist.csv", dict)
		_, err := store.GetRows(ctx)
		assert.Error(t, err)
	})
}
