/*
Package sqlite3adapter provides an implementation of the
Adapter interface in the sqlset package that works
over an SQLite3 database.
*/
package sqlite3adapter

import (
	"database/sql"

	"github.com/pbanos/grove/set/sqlset"

	// Import of sqlite3 driver
	_ "github.com/mattn/go-sqlite3"
)

type adapter struct{}

// Adapter is the sqlset.Adapter for SQLite3
var Adapter sqlset.Adapter = adapter{}

/*
Open takes a path to an SQLite3 database file and returns a store that
works on the file's database or an error if it fails to open as an sqlite3
database. The path ":memory:" opens a private in-memory database.
*/
func Open(path string) (*sqlset.Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	// an in-memory database lives and dies with its connection
	db.SetMaxOpenConns(1)
	return sqlset.New(db, Adapter), nil
}

func (adapter) Placeholder(int) string {
	return "?"
}

func (adapter) IDColumnDefinition() string {
	return `"id" INTEGER PRIMARY KEY AUTOINCREMENT`
}
