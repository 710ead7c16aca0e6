// Package testdb provides helpers for tests that need a real PostgreSQL
// database. Tests using it run behind the "integration" build tag and are
// skipped unless DATABASE_URL or TODO_TEST_DB_URL points at a server.
//
// Each test gets the migrated schema and runs inside a transaction that is
// rolled back when the test ends:
//
//	db := testdb.GetTestDBWithT(t)
//	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
//		s := postgres.NewPostgresTaskStore(tx)
//		...
//	})
package testdb
