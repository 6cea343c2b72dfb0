package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/harvest"
	"github.com/google/uuid"
)

// timeLayout is RFC3339 with a fixed-width nanosecond fraction. The fixed
// width keeps lexicographic ordering of created_at equal to chronological
// ordering, which ORDER BY relies on.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Compile-time interface verification.
var _ harvest.RecordService = (*RecordService)(nil)

// RecordService implements harvest.RecordService using SQLite.
type RecordService struct {
	db *DB
}

// NewRecordService creates a new RecordService.
func NewRecordService(db *DB) *RecordService {
	return &RecordService{db: db}
}

// CreateRecord persists a new record, assigning its ID and CreatedAt.
func (s *RecordService) CreateRecord(ctx context.Context, rec *harvest.Record) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	rec.ID = uuid.New().String()
	rec.CreatedAt = time.Now().UTC()

	headings, err := marshalField(rec.Headings, "headings")
	if err != nil {
		return err
	}
	links, err := marshalField(nonNilSlice(rec.Links), "links")
	if err != nil {
		return err
	}
	images, err := marshalField(nonNilSlice(rec.Images), "images")
	if err != nil {
		return err
	}
	paragraphs, err := marshalField(nonNilSlice(rec.Paragraphs), "paragraphs")
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO records (id, url, title, description, headings, links, images, paragraphs, status, error_message, content_hash, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, rec.ID, rec.URL, rec.Title, rec.Description, headings, links, images, paragraphs,
		rec.Status, rec.ErrorMsg, rec.ContentHash, rec.CreatedAt.Format(timeLayout))

	return err
}

// FindRecordByID retrieves a record by ID.
func (s *RecordService) FindRecordByID(ctx context.Context, id string) (*harvest.Record, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, url, title, description, headings, links, images, paragraphs, status, error_message, content_hash, created_at
		FROM records
		WHERE id = ?
	`, id)

	rec, err := scanRecord(row.Scan)
	if err == sql.ErrNoRows {
		return nil, harvest.Errorf(harvest.ENOTFOUND, "record not found")
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// FindRecords retrieves records matching the filter, most recent first.
// The limit defaults to harvest.MaxListLimit and never exceeds it.
func (s *RecordService) FindRecords(ctx context.Context, filter harvest.RecordFilter) ([]*harvest.Record, error) {
	var query strings.Builder
	var args []any

	query.WriteString(`SELECT id, url, title, description, headings, links, images, paragraphs, status, error_message, content_hash, created_at FROM records WHERE 1=1`)

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}

	limit := filter.Limit
	if limit <= 0 || limit > harvest.MaxListLimit {
		limit = harvest.MaxListLimit
	}
	query.WriteString(" ORDER BY created_at DESC LIMIT ?")
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*harvest.Record
	for rows.Next() {
		rec, err := scanRecord(rows.Scan)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// DeleteRecord permanently removes a record.
func (s *RecordService) DeleteRecord(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM records WHERE id = ?`, id)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return harvest.Errorf(harvest.ENOTFOUND, "record not found")
	}
	return nil
}

// scanRecord reads one row into a harvest.Record, decoding the JSON-encoded
// collection columns.
func scanRecord(scan func(dest ...any) error) (*harvest.Record, error) {
	var rec harvest.Record
	var headings, links, images, paragraphs, createdAt string

	err := scan(&rec.ID, &rec.URL, &rec.Title, &rec.Description, &headings, &links,
		&images, &paragraphs, &rec.Status, &rec.ErrorMsg, &rec.ContentHash, &createdAt)
	if err != nil {
		return nil, err
	}

	if err := unmarshalField(headings, "headings", &rec.Headings); err != nil {
		return nil, err
	}
	if err := unmarshalField(links, "links", &rec.Links); err != nil {
		return nil, err
	}
	if err := unmarshalField(images, "images", &rec.Images); err != nil {
		return nil, err
	}
	if err := unmarshalField(paragraphs, "paragraphs", &rec.Paragraphs); err != nil {
		return nil, err
	}

	rec.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}

	return &rec, nil
}

func marshalField(v any, fieldName string) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to encode %s: %w", fieldName, err)
	}
	return string(b), nil
}

func unmarshalField[T any](data, fieldName string, dest *T) error {
	if err := json.Unmarshal([]byte(data), dest); err != nil {
		return fmt.Errorf("failed to decode %s: %w", fieldName, err)
	}
	return nil
}

// nonNilSlice normalizes nil slices so they encode as [] rather than null.
func nonNilSlice[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
