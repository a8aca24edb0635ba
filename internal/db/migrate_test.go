package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_CreatesSchema(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	for _, table := range []string{"entries", "params"} {
		var name string
		err := database.QueryRow(
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table,
		).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_Rerunnable(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	// The migration list re-runs on every startup.
	require.NoError(t, Migrate(database))
	require.NoError(t, Migrate(database))
}

func TestMigrate_ParamsUniquePerTypeAndName(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	_, err = database.Exec(`INSERT INTO params (id, type, name) VALUES ('a', 'kategoria', 'Sport')`)
	require.NoError(t, err)

	_, err = database.Exec(`INSERT INTO params (id, type, name) VALUES ('b', 'kategoria', 'Sport')`)
	assert.Error(t, err, "duplicate (type, name) should be rejected")

	_, err = database.Exec(`INSERT INTO params (id, type, name) VALUES ('c', 'cel', 'Sport')`)
	assert.NoError(t, err, "same name under another type is fine")
}
