package datarecording

import (
	"database/sql"
	"fmt"
	"os"

	// SQLite driver used by the reader.
	_ "github.com/mattn/go-sqlite3"
)

// DataReader reads back a database written by a DataRecorder.
type DataReader struct {
	*sql.DB
}

// NewDataReader opens an existing recording database at the given path.
func NewDataReader(path string) (*DataReader, error) {
	filename := path + ".sqlite3"

	_, err := os.Stat(filename)
	if err != nil {
		return nil, fmt.Errorf("recording %s does not exist", filename)
	}

	db, err := sql.Open("sqlite3", filename)
	if err != nil {
		return nil, err
	}

	return &DataReader{DB: db}, nil
}

// ListTables returns the names of the tables in the recording.
func (r *DataReader) ListTables() ([]string, error) {
	rows, err := r.Query(
		"SELECT name FROM sqlite_master WHERE type='table' ORDER BY name;")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}

	return names, rows.Err()
}

// CountRows returns the number of rows in a table.
func (r *DataReader) CountRows(tableName string) (int, error) {
	var count int
	err := r.QueryRow("SELECT COUNT(*) FROM " + tableName + ";").
		Scan(&count)

	return count, err
}
