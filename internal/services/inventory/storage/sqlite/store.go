// Package sqlite provides a SQLite-backed inventory storage implementation.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/base64"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	sqlitemigrate "github.com/homeoinvent/homeoinvent/internal/platform/storage/sqlitemigrate"
	"github.com/homeoinvent/homeoinvent/internal/services/inventory/domain"
	"github.com/homeoinvent/homeoinvent/internal/services/inventory/storage"
	"github.com/homeoinvent/homeoinvent/internal/services/inventory/storage/sqlite/migrations"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

const medicineColumns = `id, name, potency, form, quantity, unit, location, notes, expires_at, created_at, updated_at`

// Store persists inventory state in SQLite.
type Store struct {
	sqlDB *sql.DB
	now   func() time.Time
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens a SQLite inventory store and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := "file:" + cleanPath + "?_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlitemigrate.ApplyMigrations(context.Background(), sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB, now: time.Now}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Ping reports whether the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	return s.sqlDB.PingContext(ctx)
}

// CreateMedicine inserts one medicine.
func (s *Store) CreateMedicine(ctx context.Context, medicine domain.Medicine) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	medicine.ID = strings.TrimSpace(medicine.ID)
	if medicine.ID == "" {
		return fmt.Errorf("medicine id is required")
	}
	if err := checkMedicine(medicine); err != nil {
		return err
	}
	createdAt := medicine.CreatedAt.UTC()
	updatedAt := medicine.UpdatedAt.UTC()
	if createdAt.IsZero() && updatedAt.IsZero() {
		createdAt = s.now().UTC()
		updatedAt = createdAt
	} else {
		if createdAt.IsZero() {
			createdAt = updatedAt
		}
		if updatedAt.IsZero() {
			updatedAt = createdAt
		}
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO medicines (
		   id, name, name_key, potency, form, quantity,
		   unit, location, notes, expires_at, created_at, updated_at
		 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		medicine.ID,
		medicine.Name,
		nameKey(medicine.Name),
		medicine.Potency.String(),
		string(medicine.Form),
		medicine.Quantity,
		medicine.Unit,
		medicine.Location,
		medicine.Notes,
		expiresValue(medicine.ExpiresAt),
		toMillis(createdAt),
		toMillis(updatedAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return storage.ErrAlreadyExists
		}
		return fmt.Errorf("create medicine: %w", err)
	}
	return nil
}

// GetMedicine returns one medicine by id.
func (s *Store) GetMedicine(ctx context.Context, id string) (domain.Medicine, error) {
	if err := ctx.Err(); err != nil {
		return domain.Medicine{}, err
	}
	if s == nil || s.sqlDB == nil {
		return domain.Medicine{}, fmt.Errorf("storage is not configured")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.Medicine{}, fmt.Errorf("medicine id is required")
	}

	row := s.sqlDB.QueryRowContext(ctx, `SELECT `+medicineColumns+` FROM medicines WHERE id = ?`, id)
	medicine, err := scanMedicine(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Medicine{}, storage.ErrNotFound
		}
		return domain.Medicine{}, fmt.Errorf("get medicine: %w", err)
	}
	return medicine, nil
}

// UpdateMedicine replaces the mutable fields of an existing medicine.
func (s *Store) UpdateMedicine(ctx context.Context, medicine domain.Medicine) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	medicine.ID = strings.TrimSpace(medicine.ID)
	if medicine.ID == "" {
		return fmt.Errorf("medicine id is required")
	}
	if err := checkMedicine(medicine); err != nil {
		return err
	}
	updatedAt := medicine.UpdatedAt.UTC()
	if updatedAt.IsZero() {
		updatedAt = s.now().UTC()
	}

	result, err := s.sqlDB.ExecContext(
		ctx,
		`UPDATE medicines
		    SET name = ?, name_key = ?, potency = ?, form = ?, quantity = ?,
		        unit = ?, location = ?, notes = ?, expires_at = ?, updated_at = ?
		  WHERE id = ?`,
		medicine.Name,
		nameKey(medicine.Name),
		medicine.Potency.String(),
		string(medicine.Form),
		medicine.Quantity,
		medicine.Unit,
		medicine.Location,
		medicine.Notes,
		expiresValue(medicine.ExpiresAt),
		toMillis(updatedAt),
		medicine.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return storage.ErrAlreadyExists
		}
		return fmt.Errorf("update medicine: %w", err)
	}
	return requireAffected(result, "update medicine")
}

// DeleteMedicine removes one medicine by id.
func (s *Store) DeleteMedicine(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("medicine id is required")
	}
	result, err := s.sqlDB.ExecContext(ctx, `DELETE FROM medicines WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete medicine: %w", err)
	}
	return requireAffected(result, "delete medicine")
}

// ListMedicines returns one page of medicines ordered by name.
func (s *Store) ListMedicines(ctx context.Context, pageSize int, pageToken string) (storage.MedicinePage, error) {
	if err := ctx.Err(); err != nil {
		return storage.MedicinePage{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.MedicinePage{}, fmt.Errorf("storage is not configured")
	}
	if pageSize <= 0 {
		return storage.MedicinePage{}, fmt.Errorf("page size must be greater than zero")
	}

	var (
		rows *sql.Rows
		err  error
	)
	pageToken = strings.TrimSpace(pageToken)
	if pageToken == "" {
		rows, err = s.sqlDB.QueryContext(
			ctx,
			`SELECT `+medicineColumns+`
			   FROM medicines
			  ORDER BY name_key ASC, id ASC
			  LIMIT ?`,
			pageSize+1,
		)
	} else {
		afterKey, afterID, decodeErr := decodePageToken(pageToken)
		if decodeErr != nil {
			return storage.MedicinePage{}, decodeErr
		}
		rows, err = s.sqlDB.QueryContext(
			ctx,
			`SELECT `+medicineColumns+`
			   FROM medicines
			  WHERE (name_key, id) > (?, ?)
			  ORDER BY name_key ASC, id ASC
			  LIMIT ?`,
			afterKey,
			afterID,
			pageSize+1,
		)
	}
	if err != nil {
		return storage.MedicinePage{}, fmt.Errorf("list medicines: %w", err)
	}
	defer rows.Close()

	page := storage.MedicinePage{Medicines: make([]domain.Medicine, 0, pageSize)}
	for rows.Next() {
		medicine, err := scanMedicine(rows)
		if err != nil {
			return storage.MedicinePage{}, fmt.Errorf("list medicines: %w", err)
		}
		page.Medicines = append(page.Medicines, medicine)
	}
	if err := rows.Err(); err != nil {
		return storage.MedicinePage{}, fmt.Errorf("list medicines: %w", err)
	}
	if len(page.Medicines) > pageSize {
		last := page.Medicines[pageSize-1]
		page.NextPageToken = encodePageToken(nameKey(last.Name), last.ID)
		page.Medicines = page.Medicines[:pageSize]
	}
	return page, nil
}

// ListAllMedicines returns every medicine ordered by name.
func (s *Store) ListAllMedicines(ctx context.Context) ([]domain.Medicine, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	rows, err := s.sqlDB.QueryContext(ctx, `SELECT `+medicineColumns+` FROM medicines ORDER BY name_key ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list all medicines: %w", err)
	}
	defer rows.Close()

	var out []domain.Medicine
	for rows.Next() {
		medicine, err := scanMedicine(rows)
		if err != nil {
			return nil, fmt.Errorf("list all medicines: %w", err)
		}
		out = append(out, medicine)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list all medicines: %w", err)
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMedicine(row rowScanner) (domain.Medicine, error) {
	var (
		medicine  domain.Medicine
		potency   string
		form      string
		expiresAt sql.NullInt64
		createdAt int64
		updatedAt int64
	)
	if err := row.Scan(
		&medicine.ID,
		&medicine.Name,
		&potency,
		&form,
		&medicine.Quantity,
		&medicine.Unit,
		&medicine.Location,
		&medicine.Notes,
		&expiresAt,
		&createdAt,
		&updatedAt,
	); err != nil {
		return domain.Medicine{}, err
	}
	parsed, err := domain.ParsePotency(potency)
	if err != nil {
		return domain.Medicine{}, fmt.Errorf("medicine %s: %w", medicine.ID, err)
	}
	medicine.Potency = parsed
	medicine.Form = domain.Form(form)
	if expiresAt.Valid {
		medicine.ExpiresAt = fromMillis(expiresAt.Int64)
	}
	medicine.CreatedAt = fromMillis(createdAt)
	medicine.UpdatedAt = fromMillis(updatedAt)
	return medicine, nil
}

func checkMedicine(medicine domain.Medicine) error {
	if strings.TrimSpace(medicine.Name) == "" {
		return fmt.Errorf("medicine name is required")
	}
	if medicine.Potency.IsZero() {
		return fmt.Errorf("medicine potency is required")
	}
	if _, ok := domain.ParseForm(string(medicine.Form)); !ok {
		return fmt.Errorf("medicine form %q is not supported", medicine.Form)
	}
	if medicine.Quantity < 0 {
		return fmt.Errorf("medicine quantity must not be negative")
	}
	return nil
}

func nameKey(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

func expiresValue(value time.Time) any {
	if value.IsZero() {
		return nil
	}
	return toMillis(value)
}

func requireAffected(result sql.Result, op string) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func encodePageToken(key, id string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(key + "\x00" + id))
}

func decodePageToken(token string) (string, string, error) {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return "", "", storage.ErrInvalidPageToken
	}
	key, id, ok := strings.Cut(string(raw), "\x00")
	if !ok || id == "" {
		return "", "", storage.ErrInvalidPageToken
	}
	return key, id, nil
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}

var _ storage.MedicineStore = (*Store)(nil)
