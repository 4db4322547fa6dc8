package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quiz-maker/internal/config"
)

func openTempSQLite(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{DB: config.DBConfig{
		Driver: DriverSQLite,
		DSN:    "file:" + filepath.Join(t.TempDir(), "quiz.db") + "?_pragma=foreign_keys(1)",
	}}
}

func TestRunMigrations_SQLiteUpAndDown(t *testing.T) {
	ctx := context.Background()
	cfg := openTempSQLite(t)

	db, err := Open(ctx, cfg)
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, RunMigrations(ctx, db, DriverSQLite, Up))
	// a second run is a no-op
	require.NoError(t, RunMigrations(ctx, db, DriverSQLite, Up))

	var tables []string
	require.NoError(t, db.SelectContext(ctx, &tables,
		`SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' AND name != 'schema_migrations' ORDER BY name`))
	assert.Equal(t, []string{"chapters", "questions", "quiz_questions", "quiz_results", "quizzes", "students", "textbooks"}, tables)

	require.NoError(t, RunMigrations(ctx, db, DriverSQLite, Down))

	var count int
	require.NoError(t, db.GetContext(ctx, &count, `SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'textbooks'`))
	assert.Equal(t, 0, count)
}

func TestRunMigrations_UnknownDirection(t *testing.T) {
	assert.Error(t, RunMigrations(context.Background(), nil, DriverSQLite, Direction("sideways")))
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := Open(context.Background(), &config.Config{DB: config.DBConfig{Driver: "mysql"}})
	assert.ErrorContains(t, err, "unsupported database driver")
}

func TestMigrationFiles(t *testing.T) {
	for _, driver := range []string{DriverSQLite, DriverPostgres, DriverOracle} {
		up, err := migrationFiles(driver, Up)
		require.NoError(t, err)
		down, err := migrationFiles(driver, Down)
		require.NoError(t, err)
		assert.NotEmpty(t, up, driver)
		assert.Len(t, down, len(up), driver)
	}
}

func TestSplitStatements(t *testing.T) {
	stmts := SplitStatements("CREATE TABLE a (id INT);\n\n  CREATE INDEX i ON a(id) ;\n")
	assert.Equal(t, []string{"CREATE TABLE a (id INT)", "CREATE INDEX i ON a(id)"}, stmts)
	assert.Empty(t, SplitStatements(" ; \n"))
}

func TestOracleScriptsSplitIntoSingleStatements(t *testing.T) {
	files, err := migrationFiles(DriverOracle, Up)
	require.NoError(t, err)
	content, err := migrationsFS.ReadFile(files[0])
	require.NoError(t, err)

	stmts := SplitStatements(string(content))
	assert.Len(t, stmts, 11)
	for _, s := range stmts {
		assert.NotContains(t, s, ";")
	}
}
