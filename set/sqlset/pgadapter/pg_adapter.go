/*
Package pgadapter provides an implementation of the
Adapter interface in the sqlset package that works
over a PostgreSQL database.
*/
package pgadapter

import (
	"database/sql"
	"fmt"

	"github.com/pbanos/grove/set/sqlset"

	// Import of PostgreSQL driver
	_ "github.com/lib/pq"
)

type adapter struct{}

// Adapter is the sqlset.Adapter for PostgreSQL
var Adapter sqlset.Adapter = adapter{}

/*
Open takes a PostgreSQL database connection URL and returns a store that
works on the database or an error if it fails to connect to it.
*/
func Open(url string) (*sqlset.Store, error) {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, err
	}
	err = db.Ping()
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("connecting to postgresql database: %v", err)
	}
	return sqlset.New(db, Adapter), nil
}

func (adapter) Placeholder(n int) string {
	return fmt.Sprintf("$%d", n)
}

func (adapter) IDColumnDefinition() string {
	return `"id" SERIAL PRIMARY KEY`
}
