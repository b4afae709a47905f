package chronia_test

import (
	"database/sql"
	"testing"

	_ "github.com/jackc/pgx/v5/stdlib"
)

var pgDB *sql.DB

func getPG(t *testing.T) *sql.DB {
	if pgDB == nil {
		t.Skip("postgres is not reachable")
	}
	return pgDB
}

func init() {
	db, err := sql.Open("pgx", "")
	if err != nil {
		return
	}
	if db.Ping() != nil {
		return
	}
	pgDB = db
}
