package inventory

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/homeoinvent/homeoinvent/internal/platform/id"
	"github.com/homeoinvent/homeoinvent/internal/services/inventory/domain"
	"github.com/homeoinvent/homeoinvent/internal/services/inventory/storage"
	apperrors "github.com/homeoinvent/homeoinvent/internal/services/web/platform/errors"
)

// MedicineGateway is the persistence the inventory module needs.
type MedicineGateway interface {
	CreateMedicine(ctx context.Context, medicine domain.Medicine) error
	GetMedicine(ctx context.Context, id string) (domain.Medicine, error)
	UpdateMedicine(ctx context.Context, medicine domain.Medicine) error
	DeleteMedicine(ctx context.Context, id string) error
	ListMedicines(ctx context.Context, pageSize int, pageToken string) (storage.MedicinePage, error)
}

type service struct {
	gateway MedicineGateway
	newID   func() (string, error)
	now     func() time.Time
}

func newService(gateway MedicineGateway, now func() time.Time) service {
	if now == nil {
		now = time.Now
	}
	return service{gateway: gateway, newID: id.NewID, now: now}
}

func (s service) available() error {
	if s.gateway == nil {
		return apperrors.EK(apperrors.KindUnavailable, "error.storage_unavailable", "inventory storage is not configured")
	}
	return nil
}

func (s service) listPage(ctx context.Context, pageSize int, pageToken string) (storage.MedicinePage, error) {
	if err := s.available(); err != nil {
		return storage.MedicinePage{}, err
	}
	page, err := s.gateway.ListMedicines(ctx, pageSize, pageToken)
	if err != nil {
		return storage.MedicinePage{}, mapStorageError(err)
	}
	return page, nil
}

func (s service) getMedicine(ctx context.Context, medicineID string) (domain.Medicine, error) {
	if err := s.available(); err != nil {
		return domain.Medicine{}, err
	}
	medicineID = strings.TrimSpace(medicineID)
	if !id.Valid(medicineID) {
		return domain.Medicine{}, apperrors.EK(apperrors.KindNotFound, "error.medicine_not_found", "medicine not found")
	}
	medicine, err := s.gateway.GetMedicine(ctx, medicineID)
	if err != nil {
		return domain.Medicine{}, mapStorageError(err)
	}
	return medicine, nil
}

// createMedicine validates draft and stores a new remedy. Validation failures
// are returned as *domain.ValidationError.
func (s service) createMedicine(ctx context.Context, draft domain.Draft) (domain.Medicine, error) {
	if err := s.available(); err != nil {
		return domain.Medicine{}, err
	}
	medicineID, err := s.newID()
	if err != nil {
		return domain.Medicine{}, err
	}
	stamp := s.now().UTC()
	medicine, err := draft.Apply(domain.Medicine{ID: medicineID, CreatedAt: stamp, UpdatedAt: stamp})
	if err != nil {
		return domain.Medicine{}, err
	}
	if err := s.gateway.CreateMedicine(ctx, medicine); err != nil {
		return domain.Medicine{}, mapStorageError(err)
	}
	return medicine, nil
}

func (s service) updateMedicine(ctx context.Context, medicineID string, draft domain.Draft) (domain.Medicine, error) {
	current, err := s.getMedicine(ctx, medicineID)
	if err != nil {
		return domain.Medicine{}, err
	}
	updated, err := draft.Apply(current)
	if err != nil {
		return current, err
	}
	updated.UpdatedAt = s.now().UTC()
	if err := s.gateway.UpdateMedicine(ctx, updated); err != nil {
		return current, mapStorageError(err)
	}
	return updated, nil
}

func (s service) deleteMedicine(ctx context.Context, medicineID string) error {
	if err := s.available(); err != nil {
		return err
	}
	medicineID = strings.TrimSpace(medicineID)
	if !id.Valid(medicineID) {
		return apperrors.EK(apperrors.KindNotFound, "error.medicine_not_found", "medicine not found")
	}
	if err := s.gateway.DeleteMedicine(ctx, medicineID); err != nil {
		return mapStorageError(err)
	}
	return nil
}

func mapStorageError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, storage.ErrNotFound):
		return apperrors.Wrap(apperrors.KindNotFound, "error.medicine_not_found", err)
	case errors.Is(err, storage.ErrAlreadyExists):
		return apperrors.Wrap(apperrors.KindConflict, "error.medicine_duplicate", err)
	case errors.Is(err, storage.ErrInvalidPageToken):
		return apperrors.Wrap(apperrors.KindInvalidInput, "error.invalid_page", err)
	default:
		return err
	}
}
