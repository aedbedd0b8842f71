/*
Package sqlset stores nominal datasets on SQL database tables and loads
them back.

A dataset is stored on a single table with a TEXT column per attribute,
holding the values of the instances, NULL for undefined ones, and an id
column keeping the order the instances were written in. The SQL dialect
differences are handled by an Adapter; the sqlite3adapter and pgadapter
subpackages provide one for SQLite3 and PostgreSQL respectively.
*/
package sqlset
