package domain

// Column describes one column of a warehouse table, as reported by the
// catalog metadata. Transient: computed per request, never persisted.
type Column struct {
	Name          string
	DataType      string
	IsNullable    bool
	ColumnDefault *string
	IsPrimaryKey  bool
}

// TableSchema is the ordered column list of a single table. Columns follow
// the table's physical column order.
type TableSchema struct {
	Table   string
	Columns []Column
}

// Table is a table name enumerated from the catalog.
type Table struct {
	Name string
}

// QueryResult holds the rows returned by a proxied query. RowCount always
// equals len(Rows).
type QueryResult struct {
	Rows     []map[string]any
	RowCount int
}
