package seed

import "database/sql"

// DBTX is the narrow slice of database/sql the seeding engine needs. Both
// *sql.DB and *sql.Tx satisfy it; the engine never manages connections or
// transactions itself.
type DBTX interface {
	Exec(query string, args ...any) (sql.Result, error)
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
}
