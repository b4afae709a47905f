package chronia_test

import (
	"database/sql"
	"testing"

	_ "github.com/go-sql-driver/mysql"
)

var mysqlDB *sql.DB

func getMySQL(t *testing.T) *sql.DB {
	if mysqlDB == nil {
		t.Skip("mysql is not reachable")
	}
	return mysqlDB
}

func init() {
	db, err := sql.Open("mysql", "root:123456@/")
	if err != nil {
		return
	}
	if db.Ping() != nil {
		return
	}
	mysqlDB = db
}
