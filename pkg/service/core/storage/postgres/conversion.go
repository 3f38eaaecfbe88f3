package postgres

import (
	"database/sql"
	"errors"
	"time"

	"github.com/goccy/go-json"
	"github.com/lib/pq"
)

const (
	pqUniqueViolation     pq.ErrorCode = "23505"
	pqForeignKeyViolation pq.ErrorCode = "23503"
)

type Converter[O any] interface {
	To() (O, error)
}

func From[I Converter[O], O any](i I) (O, error) {
	return i.To()
}

func ptrToNullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}

	return sql.NullString{String: *s, Valid: true}
}

func nullStringToPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}

	return &ns.String
}

func nullTimeToPtr(nt sql.NullTime) *time.Time {
	if !nt.Valid {
		return nil
	}

	return &nt.Time
}

func stringToNullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}

	return sql.NullString{String: s, Valid: true}
}

// toJSONB marshals v for a jsonb column, a nil slice is stored as [].
func toJSONB[T any](v []T) (json.RawMessage, error) {
	if v == nil {
		v = []T{}
	}

	return json.Marshal(v)
}

// fromJSONB unmarshals a jsonb array column, a NULL or empty value yields an
// empty slice.
func fromJSONB[T any](raw json.RawMessage) ([]T, error) {
	out := []T{}

	if len(raw) == 0 || string(raw) == "null" {
		return out, nil
	}

	err := json.Unmarshal(raw, &out)
	if err != nil {
		return nil, err
	}

	return out, nil
}

func isPQError(err error, code pq.ErrorCode) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == code
	}

	return false
}
