package inventory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/homeoinvent/homeoinvent/internal/services/inventory/domain"
	"github.com/homeoinvent/homeoinvent/internal/services/inventory/storage"
)

const (
	arnicaID    = "aaaaaaaaaaaaaaaaaaaaaaaaaa"
	calendulaID = "bbbbbbbbbbbbbbbbbbbbbbbbbb"
	missingID   = "zzzzzzzzzzzzzzzzzzzzzzzzzz"
)

type fakeGateway struct {
	mu        sync.Mutex
	medicines map[string]domain.Medicine
	listErr   error
	createErr error
	updateErr error
	deleteErr error
	lastSize  int
	lastToken string
	nextToken string
}

func newFakeGateway(medicines ...domain.Medicine) *fakeGateway {
	g := &fakeGateway{medicines: map[string]domain.Medicine{}}
	for _, m := range medicines {
		g.medicines[m.ID] = m
	}
	return g
}

func (g *fakeGateway) CreateMedicine(_ context.Context, medicine domain.Medicine) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.createErr != nil {
		return g.createErr
	}
	if _, ok := g.medicines[medicine.ID]; ok {
		return storage.ErrAlreadyExists
	}
	g.medicines[medicine.ID] = medicine
	return nil
}

func (g *fakeGateway) GetMedicine(_ context.Context, id string) (domain.Medicine, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	medicine, ok := g.medicines[id]
	if !ok {
		return domain.Medicine{}, storage.ErrNotFound
	}
	return medicine, nil
}

func (g *fakeGateway) UpdateMedicine(_ context.Context, medicine domain.Medicine) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.updateErr != nil {
		return g.updateErr
	}
	if _, ok := g.medicines[medicine.ID]; !ok {
		return storage.ErrNotFound
	}
	g.medicines[medicine.ID] = medicine
	return nil
}

func (g *fakeGateway) DeleteMedicine(_ context.Context, id string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.deleteErr != nil {
		return g.deleteErr
	}
	if _, ok := g.medicines[id]; !ok {
		return storage.ErrNotFound
	}
	delete(g.medicines, id)
	return nil
}

func (g *fakeGateway) ListMedicines(_ context.Context, pageSize int, pageToken string) (storage.MedicinePage, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.lastSize = pageSize
	g.lastToken = pageToken
	if g.listErr != nil {
		return storage.MedicinePage{}, g.listErr
	}
	out := make([]domain.Medicine, 0, len(g.medicines))
	for _, m := range g.medicines {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return storage.MedicinePage{Medicines: out, NextPageToken: g.nextToken}, nil
}

func (g *fakeGateway) get(id string) (domain.Medicine, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	m, ok := g.medicines[id]
	return m, ok
}

func (g *fakeGateway) count() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.medicines)
}

func arnica() domain.Medicine {
	return domain.Medicine{
		ID:       arnicaID,
		Name:     "Arnica montana",
		Potency:  domain.Potency{Scale: domain.ScaleC, Value: 30},
		Form:     domain.FormPellets,
		Quantity: 1,
		Unit:     "tubes",
		Location: "Kitchen cabinet",
	}
}

func calendula() domain.Medicine {
	return domain.Medicine{
		ID:       calendulaID,
		Name:     "Calendula",
		Potency:  domain.Potency{Scale: domain.ScaleQ},
		Form:     domain.FormOintment,
		Quantity: 4,
	}
}
