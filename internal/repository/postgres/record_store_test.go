package postgres

import (
	"math/big"
	"testing"

	"go-recruitment-ops/internal/domain"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectQuery(t *testing.T) {
	q, err := selectQuery(domain.TableShortlist)
	require.NoError(t, err)
	assert.Equal(t,
		`SELECT "project_id", "candidate_id", "note", "rating", "accepted", "reserve", "rejected" FROM "p1_cms" ORDER BY "project_id", "candidate_id"`,
		q)

	_, err = selectQuery("users; DROP TABLE x")
	assert.Error(t, err)
}

func TestRenderStatement(t *testing.T) {
	t.Run("Insert with conflict tolerance", func(t *testing.T) {
		q, err := renderStatement(domain.Statement{
			Table:          domain.TableShortlist,
			Kind:           domain.StatementInsert,
			Columns:        []string{"project_id", "candidate_id"},
			IgnoreConflict: true,
		})
		require.NoError(t, err)
		assert.Equal(t,
			`INSERT INTO "p1_cms" ("project_id", "candidate_id") VALUES ($1, $2) ON CONFLICT ("project_id", "candidate_id") DO NOTHING`,
			q)
	})

	t.Run("Update binds keys after columns", func(t *testing.T) {
		q, err := renderStatement(domain.Statement{
			Table:      domain.TableShortlist,
			Kind:       domain.StatementUpdate,
			Columns:    []string{"note"},
			KeyColumns: []string{"project_id", "candidate_id"},
		})
		require.NoError(t, err)
		assert.Equal(t, `UPDATE "p1_cms" SET "note" = $1 WHERE "project_id" = $2 AND "candidate_id" = $3`, q)
	})

	t.Run("Update requires keys", func(t *testing.T) {
		_, err := renderStatement(domain.Statement{
			Table:   domain.TableClients,
			Kind:    domain.StatementUpdate,
			Columns: []string{"company"},
		})
		assert.Error(t, err)
	})
}

func TestNormalizeValue(t *testing.T) {
	n := pgtype.Numeric{Int: big.NewInt(75), Exp: -1, Valid: true}
	assert.Equal(t, 7.5, normalizeValue(n))
	assert.Nil(t, normalizeValue(pgtype.Numeric{}))
	assert.Equal(t, "x", normalizeValue("x"))
}
