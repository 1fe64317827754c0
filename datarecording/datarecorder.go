// Package datarecording stores simulation artifacts in SQLite databases.
// Tables are derived from flat sample structs; rows are buffered and
// flushed in batches, and a final flush is registered at process exit so
// no recorded data is lost.
package datarecording

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/fatih/structs"

	// SQLite driver used by the recorder.
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/xid"
	"github.com/tebeka/atexit"
)

// DataRecorder records structured data into a backing store.
type DataRecorder interface {
	// CreateTable creates a table using the fields of the sample entry as
	// columns. The sample must be a flat struct of scalar fields.
	CreateTable(tableName string, sampleEntry any)

	// InsertData appends an entry to an existing table.
	InsertData(tableName string, entry any)

	// ListTables returns the names of all the created tables.
	ListTables() []string

	// Flush writes all the buffered entries to the store.
	Flush()

	// Close flushes and closes the store.
	Close()
}

// NewDataRecorder creates a DataRecorder backed by a SQLite database at the
// given path. An empty path generates a unique name.
func NewDataRecorder(path string) DataRecorder {
	w := &sqliteWriter{
		dbName:    path,
		batchSize: 100000,
		tables:    make(map[string]*table),
	}

	w.init()

	atexit.Register(func() { w.Flush() })

	return w
}

type table struct {
	structType reflect.Type
	entries    []any
}

type sqliteWriter struct {
	*sql.DB

	dbName     string
	tables     map[string]*table
	entryCount int
	batchSize  int
}

func (w *sqliteWriter) init() {
	if w.dbName == "" {
		w.dbName = "uartsim_recording_" + xid.New().String()
	}

	filename := w.dbName + ".sqlite3"

	_, err := os.Stat(filename)
	if err == nil {
		panic(fmt.Errorf("file %s already exists", filename))
	}

	fmt.Fprintf(os.Stderr, "Database created for recording: %s\n", filename)

	db, err := sql.Open("sqlite3", filename)
	if err != nil {
		panic(err)
	}

	w.DB = db
}

func (w *sqliteWriter) CreateTable(tableName string, sampleEntry any) {
	err := checkStructFields(sampleEntry)
	if err != nil {
		panic(err)
	}

	names := structs.Names(sampleEntry)
	fields := strings.Join(names, ", \n\t")

	createTableSQL := `CREATE TABLE ` + tableName +
		` (` + "\n\t" + fields + "\n" + `);`
	w.mustExecute(createTableSQL)

	w.tables[tableName] = &table{
		structType: reflect.TypeOf(sampleEntry),
		entries:    []any{},
	}
}

func (w *sqliteWriter) InsertData(tableName string, entry any) {
	t, exists := w.tables[tableName]
	if !exists {
		panic(fmt.Sprintf("table %s does not exist", tableName))
	}

	t.entries = append(t.entries, entry)

	w.entryCount++
	if w.entryCount >= w.batchSize {
		w.Flush()
	}
}

func (w *sqliteWriter) ListTables() []string {
	tables := make([]string, 0, len(w.tables))
	for name := range w.tables {
		tables = append(tables, name)
	}

	return tables
}

func (w *sqliteWriter) Flush() {
	for name, t := range w.tables {
		w.flushTable(name, t)
	}

	w.entryCount = 0
}

func (w *sqliteWriter) Close() {
	w.Flush()

	err := w.DB.Close()
	if err != nil {
		panic(err)
	}
}

func (w *sqliteWriter) flushTable(name string, t *table) {
	if len(t.entries) == 0 {
		return
	}

	tx, err := w.Begin()
	if err != nil {
		panic(err)
	}

	stmt := prepareInsert(tx, name, t)
	for _, entry := range t.entries {
		_, err := stmt.Exec(structs.Values(entry)...)
		if err != nil {
			panic(err)
		}
	}

	err = tx.Commit()
	if err != nil {
		panic(err)
	}

	t.entries = t.entries[:0]
}

func prepareInsert(tx *sql.Tx, name string, t *table) *sql.Stmt {
	numFields := t.structType.NumField()
	placeholders := strings.Repeat("?, ", numFields)
	placeholders = strings.TrimSuffix(placeholders, ", ")

	insertSQL := `INSERT INTO ` + name + ` VALUES (` + placeholders + `);`

	stmt, err := tx.Prepare(insertSQL)
	if err != nil {
		panic(err)
	}

	return stmt
}

func (w *sqliteWriter) mustExecute(query string) sql.Result {
	res, err := w.Exec(query)
	if err != nil {
		panic(fmt.Sprintf("error executing %s: %s", query, err))
	}

	return res
}

func checkStructFields(entry any) error {
	t := reflect.TypeOf(entry)

	for i := 0; i < t.NumField(); i++ {
		if !isAllowedKind(t.Field(i).Type.Kind()) {
			return errors.New("entry fields must be scalar values")
		}
	}

	return nil
}

func isAllowedKind(kind reflect.Kind) bool {
	switch kind {
	case
		reflect.Bool,
		reflect.Int,
		reflect.Int8,
		reflect.Int16,
		reflect.Int32,
		reflect.Int64,
		reflect.Uint,
		reflect.Uint8,
		reflect.Uint16,
		reflect.Uint32,
		reflect.Uint64,
		reflect.Float32,
		reflect.Float64,
		reflect.String:
		return true
	default:
		return false
	}
}
