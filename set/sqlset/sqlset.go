package sqlset

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/pbanos/grove/dataset"
	"github.com/pbanos/grove/feature"
	"github.com/pkg/errors"
)

/*
MaxInstanceInsertionsPerStatement is the maximum number of instances that
are inserted with a single insert command. Writing more will result in
more insertion commands.
*/
const MaxInstanceInsertionsPerStatement = 10

/*
Adapter is an interface providing the SQL dialect specifics needed to
store datasets on a database.
*/
type Adapter interface {
	// Placeholder returns the placeholder for the n-th (1-based)
	// parameter of a statement
	Placeholder(n int) string
	// IDColumnDefinition returns the definition of an auto-incremented
	// integer primary key column named id
	IDColumnDefinition() string
}

/*
Store reads and writes datasets on tables of a database through an
Adapter.
*/
type Store struct {
	db      *sql.DB
	adapter Adapter
}

/*
New takes a database handle and the Adapter for its SQL dialect and returns
a Store on it.
*/
func New(db *sql.DB, adapter Adapter) *Store {
	return &Store{db: db, adapter: adapter}
}

// DB returns the database handle of the store
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database handle of the store
func (s *Store) Close() error {
	return s.db.Close()
}

/*
ColumnName takes the name of an attribute or table and returns it as
usable name for a column or table, or an error if the name is empty,
contains a double quote or is reserved.
*/
func ColumnName(name string) (string, error) {
	if name == "" {
		return "", errors.New("empty names cannot be used for columns or tables")
	}
	if name == "id" {
		return "", errors.Errorf(`'%s' is reserved and cannot be used as attribute name`, name)
	}
	if strings.ContainsAny(name, `"`) {
		return "", errors.Errorf(`name '%s' contains invalid character '"'`, name)
	}
	return name, nil
}

func columnNames(attributes []*feature.EnumAttribute) ([]string, error) {
	columns := make([]string, len(attributes))
	for i, a := range attributes {
		c, err := ColumnName(a.Name())
		if err != nil {
			return nil, err
		}
		columns[i] = c
	}
	return columns, nil
}

func quoteAll(columns []string) string {
	return `"` + strings.Join(columns, `", "`) + `"`
}

/*
Read takes a context, a table name and the attributes to read from it and
returns a dataset with the instances stored on the table, in the order
they were written, or an error. Every value is validated against the
domain of its attribute; NULL values are left undefined.
*/
func (s *Store) Read(ctx context.Context, table string, attributes []*feature.EnumAttribute) (*dataset.Dataset, error) {
	table, err := ColumnName(table)
	if err != nil {
		return nil, err
	}
	if len(attributes) == 0 {
		return nil, errors.New("no attributes to read")
	}
	columns, err := columnNames(attributes)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf(`SELECT %s FROM "%s" ORDER BY "id"`, quoteAll(columns), table)
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, errors.Wrapf(err, "querying table %s", table)
	}
	defer rows.Close()
	d := dataset.New(table, attributes...)
	for j := 1; rows.Next(); j++ {
		values := make([]sql.NullString, len(columns))
		dest := make([]interface{}, len(values))
		for i := range values {
			dest[i] = &values[i]
		}
		err = rows.Scan(dest...)
		if err != nil {
			return nil, errors.Wrapf(err, "scanning row %d of table %s", j, table)
		}
		instance := dataset.NewInstance()
		for i, v := range values {
			if !v.Valid {
				continue
			}
			err = instance.Set(attributes[i], feature.Value(v.String))
			if err != nil {
				return nil, errors.Wrapf(err, "row %d of table %s", j, table)
			}
		}
		d.AddInstances(instance)
	}
	err = rows.Err()
	if err != nil {
		return nil, errors.Wrapf(err, "reading table %s", table)
	}
	return d, nil
}

/*
Write takes a context, a table name and a view and stores the instances of
the view on the table, creating it if it does not exist. Instances are
inserted in a single transaction. It returns the number of instances
written or an error, in which case none are.
*/
func (s *Store) Write(ctx context.Context, table string, v dataset.View) (int, error) {
	table, err := ColumnName(table)
	if err != nil {
		return 0, err
	}
	attributes := dataset.Attributes(v)
	if len(attributes) == 0 {
		return 0, errors.New("no attributes to store")
	}
	columns, err := columnNames(attributes)
	if err != nil {
		return 0, err
	}
	err = s.createTable(ctx, table, columns)
	if err != nil {
		return 0, err
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, errors.Wrap(err, "beginning transaction")
	}
	n := v.InstanceCount()
	for start := 0; start < n; start += MaxInstanceInsertionsPerStatement {
		end := start + MaxInstanceInsertionsPerStatement
		if end > n {
			end = n
		}
		err = s.insert(ctx, tx, table, columns, attributes, dataset.NewRangeView(v, start, end))
		if err != nil {
			tx.Rollback()
			return 0, errors.Wrapf(err, "inserting instances %d to %d", start+1, end)
		}
	}
	err = tx.Commit()
	if err != nil {
		return 0, errors.Wrap(err, "committing transaction")
	}
	return n, nil
}

// Count returns the number of instances stored on the table
func (s *Store) Count(ctx context.Context, table string) (int, error) {
	table, err := ColumnName(table)
	if err != nil {
		return 0, err
	}
	var count int
	err = s.db.QueryRowContext(ctx, fmt.Sprintf(`SELECT COUNT(*) FROM "%s"`, table)).Scan(&count)
	if err != nil {
		return 0, errors.Wrapf(err, "counting rows of table %s", table)
	}
	return count, nil
}

func (s *Store) createTable(ctx context.Context, table string, columns []string) error {
	var createStmtBuf bytes.Buffer
	fmt.Fprintf(&createStmtBuf, `CREATE TABLE IF NOT EXISTS "%s" (`, table)
	for _, c := range columns {
		fmt.Fprintf(&createStmtBuf, `"%s" TEXT NULL, `, c)
	}
	createStmtBuf.WriteString(s.adapter.IDColumnDefinition())
	createStmtBuf.WriteString(")")
	_, err := s.db.ExecContext(ctx, createStmtBuf.String())
	if err != nil {
		return errors.Wrapf(err, "ensuring table %s exists", table)
	}
	return nil
}

func (s *Store) insert(ctx context.Context, tx *sql.Tx, table string, columns []string, attributes []*feature.EnumAttribute, v dataset.View) error {
	var insertStmtBuf bytes.Buffer
	fmt.Fprintf(&insertStmtBuf, `INSERT INTO "%s" (%s) VALUES `, table, quoteAll(columns))
	args := make([]interface{}, 0, v.InstanceCount()*len(columns))
	for i := 0; i < v.InstanceCount(); i++ {
		if i > 0 {
			insertStmtBuf.WriteString(", ")
		}
		insertStmtBuf.WriteString("(")
		instance := v.InstanceAt(i)
		for j, a := range attributes {
			if j > 0 {
				insertStmtBuf.WriteString(", ")
			}
			insertStmtBuf.WriteString(s.adapter.Placeholder(len(args) + 1))
			value, ok := instance.ValueFor(a)
			if ok {
				args = append(args, string(value))
			} else {
				args = append(args, nil)
			}
		}
		insertStmtBuf.WriteString(")")
	}
	_, err := tx.ExecContext(ctx, insertStmtBuf.String(), args...)
	return err
}
