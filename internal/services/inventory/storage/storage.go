// Package storage defines persistence contracts for the remedy inventory.
package storage

import (
	"context"
	"errors"

	"github.com/homeoinvent/homeoinvent/internal/services/inventory/domain"
)

var (
	// ErrNotFound indicates a requested medicine is missing.
	ErrNotFound = errors.New("record not found")
	// ErrAlreadyExists indicates a medicine with the same id, or the same
	// name, potency and form, is already stored.
	ErrAlreadyExists = errors.New("record already exists")
	// ErrInvalidPageToken indicates a page token that the store did not issue.
	ErrInvalidPageToken = errors.New("invalid page token")
)

// MedicinePage stores one page of medicines ordered by name.
type MedicinePage struct {
	Medicines     []domain.Medicine
	NextPageToken string
}

// MedicineStore persists inventory medicines.
type MedicineStore interface {
	CreateMedicine(ctx context.Context, medicine domain.Medicine) error
	GetMedicine(ctx context.Context, id string) (domain.Medicine, error)
	UpdateMedicine(ctx context.Context, medicine domain.Medicine) error
	DeleteMedicine(ctx context.Context, id string) error
	ListMedicines(ctx context.Context, pageSize int, pageToken string) (MedicinePage, error)
	ListAllMedicines(ctx context.Context) ([]domain.Medicine, error)
}
