package admin

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"go-cms-app/internal/data"

	"github.com/jmoiron/sqlx"
)

// tableStore is a Store over one SQL table. The table and column names are
// fixed at construction; nothing is derived at runtime.
type tableStore struct {
	db      *sqlx.DB
	table   string
	columns []string // editable columns, id excluded
	fields  []Field  // parallel to columns
}

// newTableStore creates a tableStore for the given table and fields.
func newTableStore(db *sqlx.DB, table string, fields []Field) *tableStore {
	columns := make([]string, len(fields))
	for i, f := range fields {
		columns[i] = f.Name
	}
	return &tableStore{db: db, table: table, columns: columns, fields: fields}
}

var _ Store = (*tableStore)(nil)

func (s *tableStore) selectList() string {
	return "id, " + strings.Join(s.columns, ", ")
}

// List returns one page of records ordered by id.
func (s *tableStore) List(ctx context.Context, page, perPage int) ([]Record, data.Pagination, error) {
	var total int64
	if err := s.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM "+s.table); err != nil {
		return nil, data.Pagination{}, fmt.Errorf("failed to count %s: %w", s.table, err)
	}
	p := data.Paginate(total, page, perPage)

	limit, offset := data.PageBounds(page, perPage)
	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY id LIMIT ? OFFSET ?", s.selectList(), s.table)
	rows, err := s.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, data.Pagination{}, fmt.Errorf("failed to list %s: %w", s.table, err)
	}
	defer rows.Close()

	records := []Record{}
	for rows.Next() {
		rec, err := s.scanRecord(rows)
		if err != nil {
			return nil, data.Pagination{}, err
		}
		records = append(records, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, data.Pagination{}, fmt.Errorf("failed to read %s rows: %w", s.table, err)
	}
	return records, p, nil
}

// Get returns a single record by id, or nil when absent.
func (s *tableStore) Get(ctx context.Context, id int64) (*Record, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = ?", s.selectList(), s.table)
	rows, err := s.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get %s record: %w", s.table, err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}
	return s.scanRecord(rows)
}

// Create inserts a record from form values, in field order.
func (s *tableStore) Create(ctx context.Context, values []string) error {
	if len(values) != len(s.columns) {
		return fmt.Errorf("expected %d values for %s, got %d", len(s.columns), s.table, len(values))
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(s.columns)), ", ")
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		s.table, strings.Join(s.columns, ", "), placeholders)
	if _, err := s.db.ExecContext(ctx, query, s.bindValues(values)...); err != nil {
		return fmt.Errorf("failed to create %s record: %w", s.table, err)
	}
	return nil
}

// Update rewrites a record's editable columns.
func (s *tableStore) Update(ctx context.Context, id int64, values []string) error {
	if len(values) != len(s.columns) {
		return fmt.Errorf("expected %d values for %s, got %d", len(s.columns), s.table, len(values))
	}
	assignments := make([]string, len(s.columns))
	for i, col := range s.columns {
		assignments[i] = col + " = ?"
	}
	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = ?", s.table, strings.Join(assignments, ", "))
	args := append(s.bindValues(values), id)
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update %s record: %w", s.table, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("no %s record found with id %d", s.table, id)
	}
	return nil
}

// Delete removes a record by id.
func (s *tableStore) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = ?", s.table), id)
	if err != nil {
		return fmt.Errorf("failed to delete %s record: %w", s.table, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("no %s record found with id %d", s.table, id)
	}
	return nil
}

// scanRecord reads the current row into a Record, mapping NULLs to "".
func (s *tableStore) scanRecord(rows *sql.Rows) (*Record, error) {
	rec := Record{Values: make([]string, len(s.columns))}
	dest := make([]interface{}, 0, len(s.columns)+1)
	dest = append(dest, &rec.ID)
	raw := make([]sql.NullString, len(s.columns))
	for i := range raw {
		dest = append(dest, &raw[i])
	}
	if err := rows.Scan(dest...); err != nil {
		return nil, fmt.Errorf("failed to scan %s row: %w", s.table, err)
	}
	for i, v := range raw {
		if v.Valid {
			rec.Values[i] = v.String
		}
	}
	return &rec, nil
}

// bindValues converts form strings into bind arguments, storing NULL for
// empty optional fields.
func (s *tableStore) bindValues(values []string) []interface{} {
	args := make([]interface{}, len(values))
	for i, v := range values {
		if v == "" && s.fields[i].Optional {
			args[i] = nil
			continue
		}
		args[i] = v
	}
	return args
}
