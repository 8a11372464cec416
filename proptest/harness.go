package proptest

import (
	"catadmin/internal/catalog"
	"catadmin/internal/console"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"pgregory.net/rapid"
)

var (
	errNotFound = errors.New("not found")
	errOffline  = errors.New("service offline")
)

var fixedNow = time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)

// MemService is an in-memory catalog service. Offline makes every call fail.
type MemService struct {
	mu       sync.Mutex
	products []catalog.Product
	nextID   int
	Offline  bool
}

func NewMemService(products []catalog.Product) *MemService {
	next := 1
	for _, p := range products {
		next = max(next, p.ID+1)
	}
	return &MemService{products: products, nextID: next}
}

func (s *MemService) List(context.Context) ([]catalog.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Offline {
		return nil, errOffline
	}
	out := make([]catalog.Product, len(s.products))
	copy(out, s.products)
	return out, nil
}

func (s *MemService) Get(_ context.Context, id int) (catalog.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Offline {
		return catalog.Product{}, errOffline
	}
	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return catalog.Product{}, errNotFound
}

func (s *MemService) Create(_ context.Context, in catalog.ProductInput) (catalog.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Offline {
		return catalog.Product{}, errOffline
	}
	p := fromInput(s.nextID, in)
	s.nextID++
	s.products = append(s.products, p)
	return p, nil
}

func (s *MemService) Update(_ context.Context, id int, in catalog.ProductInput) (catalog.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Offline {
		return catalog.Product{}, errOffline
	}
	for i, p := range s.products {
		if p.ID == id {
			s.products[i] = fromInput(id, in)
			return s.products[i], nil
		}
	}
	return catalog.Product{}, errNotFound
}

func (s *MemService) IDs() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]int, len(s.products))
	for i, p := range s.products {
		ids[i] = p.ID
	}
	return ids
}

func fromInput(id int, in catalog.ProductInput) catalog.Product {
	return catalog.Product{
		ID:          id,
		Title:       in.Title,
		Price:       in.Price,
		Description: in.Description,
		Category:    &catalog.Category{ID: in.CategoryID, Name: "cat"},
		Images:      in.Images,
	}
}

type Harness struct {
	T *rapid.T
}

func (h *Harness) GenProducts(minCount, maxCount int) []catalog.Product {
	return GenProducts(h.T, minCount, maxCount)
}

type ConsoleHarness struct {
	Harness
	Service  *MemService
	Recorder *console.Recorder
	Console  *console.Console
	Dir      string
}

// MustLoad loads the catalog and fails the check when the load fails.
func (h *ConsoleHarness) MustLoad() {
	if err := h.Console.LoadAll(context.Background()); err != nil {
		h.T.Fatalf("failed to load catalog: %v", err)
	}
}

// RunWithConsole runs fn against a console over a freshly generated catalog.
func RunWithConsole(t *testing.T, fn func(h *ConsoleHarness)) {
	tempDir := t.TempDir()
	rapid.Check(t, func(rt *rapid.T) {
		svc := NewMemService(GenProducts(rt, minProducts, maxProducts))
		rec := &console.Recorder{}
		con := console.New(svc, rec, rec,
			console.WithPerPage(perPageGen.Draw(rt, "perPage")),
			console.WithClock(func() time.Time { return fixedNow }),
		)

		fn(&ConsoleHarness{
			Harness:  Harness{T: rt},
			Service:  svc,
			Recorder: rec,
			Console:  con,
			Dir:      tempDir,
		})
	})
}

func RunBasic(t *testing.T, fn func(h *Harness)) {
	rapid.Check(t, func(rt *rapid.T) {
		fn(&Harness{T: rt})
	})
}
