// Package preferences persists the client's local settings (neuro mode, ui
// mode) as key/value rows in SQLite.
//
// The SQLite implementation works over a dbx.DBTX, so it can run against a
// *sql.DB or join a transaction started with dbx.WithTx.
//
//	repo := preferences.NewSQLiteRepository(db)
//	_ = repo.SetMany(ctx, map[string]string{"neuroMode": "divergent"})
//	all, _ := repo.List(ctx)
package preferences
