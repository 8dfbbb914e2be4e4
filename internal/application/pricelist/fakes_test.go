package pricelist_test

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/jhoicas/listas-precios/internal/domain"
	"github.com/jhoicas/listas-precios/internal/domain/entity"
	"github.com/jhoicas/listas-precios/internal/domain/pricing"
	"github.com/jhoicas/listas-precios/internal/domain/repository"
)

var errStore = errors.New("fallo del almacén")

// memStore almacén en memoria de listas y ofertas; registra el tamaño de cada lote.
// Para el puerto de ofertas se usa memStoreOffers.
type memStore struct {
	mu          sync.Mutex
	lists       map[string]*entity.PriceList
	items       map[string][]*entity.PriceListItem
	offers      map[string]*entity.SupplierOffer
	itemBatches []int
	offerBatch  []int
	// failItemsOnCall / failOffersOnCall: número de llamada (1-based) que falla; 0 = nunca.
	failItemsOnCall  int
	failOffersOnCall int
}

var _ repository.PriceListRepository = (*memStore)(nil)

func newMemStore() *memStore {
	return &memStore{
		lists:  map[string]*entity.PriceList{},
		items:  map[string][]*entity.PriceListItem{},
		offers: map[string]*entity.SupplierOffer{},
	}
}

func (s *memStore) Create(_ context.Context, l *entity.PriceList) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.lists[l.ID]; ok {
		return domain.ErrDuplicate
	}
	cp := *l
	s.lists[l.ID] = &cp
	return nil
}

func (s *memStore) GetByID(_ context.Context, id string) (*entity.PriceList, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.lists[id]
	if !ok {
		return nil, nil
	}
	cp := *l
	return &cp, nil
}

func (s *memStore) List(_ context.Context, supplierID string, limit, offset int) ([]*entity.PriceList, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*entity.PriceList
	for _, l := range s.lists {
		if supplierID == "" || l.SupplierID == supplierID {
			cp := *l
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CutoffDate.After(out[j].CutoffDate) })
	if offset >= len(out) {
		return nil, nil
	}
	return out[offset:min(offset+limit, len(out))], nil
}

func (s *memStore) UpdateStatus(_ context.Context, id string, status entity.PriceListStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.lists[id]
	if !ok {
		return domain.ErrNotFound
	}
	if !l.Status.CanAdvanceTo(status) {
		return domain.ErrConflict
	}
	l.Status = status
	return nil
}

func (s *memStore) CreateItems(_ context.Context, listID string, items []*entity.PriceListItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(items) > repository.MaxBatchWrites {
		return domain.ErrBatchTooLarge
	}
	s.itemBatches = append(s.itemBatches, len(items))
	if s.failItemsOnCall == len(s.itemBatches) {
		return fmt.Errorf("lote de ítems: %w", errStore)
	}
	s.items[listID] = append(s.items[listID], items...)
	return nil
}

func (s *memStore) ListItems(_ context.Context, listID string) ([]*entity.PriceListItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*entity.PriceListItem(nil), s.items[listID]...), nil
}

func (s *memStore) UpsertBatch(_ context.Context, offers []*entity.SupplierOffer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(offers) > repository.MaxBatchWrites {
		return domain.ErrBatchTooLarge
	}
	s.offerBatch = append(s.offerBatch, len(offers))
	if s.failOffersOnCall == len(s.offerBatch) {
		return fmt.Errorf("lote de ofertas: %w", errStore)
	}
	for _, o := range offers {
		cp := *o
		if prev, ok := s.offers[o.ID]; ok {
			cp.ProductID = prev.ProductID
		}
		s.offers[o.ID] = &cp
	}
	return nil
}

func (s *memStore) ListBySupplier(_ context.Context, supplierID string, limit, offset int) ([]*entity.SupplierOffer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*entity.SupplierOffer
	for _, o := range s.offers {
		if supplierID == "" || o.SupplierID == supplierID {
			cp := *o
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	if offset >= len(out) {
		return nil, nil
	}
	return out[offset:min(offset+limit, len(out))], nil
}

func (s *memStore) offer(id string) *entity.SupplierOffer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.offers[id]
}

type memStoreOffers struct{ *memStore }

// GetByID de ofertas (el de memStore corresponde a listas).
func (s memStoreOffers) GetByID(_ context.Context, id string) (*entity.SupplierOffer, error) {
	o := s.offer(id)
	if o == nil {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

var _ repository.SupplierOfferRepository = memStoreOffers{}

// stubReader devuelve siempre la hoja configurada.
type stubReader struct {
	sheet *pricing.Sheet
	err   error
	names []string
}

func (r *stubReader) ReadFirstSheet(name string, _ []byte) (*pricing.Sheet, error) {
	r.names = append(r.names, name)
	if r.err != nil {
		return nil, r.err
	}
	return r.sheet, nil
}

// stubStorage almacenamiento de archivos en memoria.
type stubStorage struct {
	objects map[string][]byte
}

func (s *stubStorage) Download(_ context.Context, bucket, path string) ([]byte, error) {
	data, ok := s.objects[bucket+"/"+path]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return data, nil
}

func sheetOf(headers []string, rows ...[]string) *pricing.Sheet {
	sh := &pricing.Sheet{Headers: headers}
	for _, r := range rows {
		row := pricing.Row{}
		for i, h := range headers {
			v := ""
			if i < len(r) {
				v = r[i]
			}
			row[h] = pricing.TextCell(v)
		}
		sh.Rows = append(sh.Rows, row)
	}
	return sh
}

func bigSheet(n int) *pricing.Sheet {
	rows := make([][]string, 0, n)
	for i := 0; i < n; i++ {
		rows = append(rows, []string{fmt.Sprintf("SKU-%04d", i), fmt.Sprintf("Producto %d", i), "1,5"})
	}
	return sheetOf([]string{"SKU", "Nombre", "Precio"}, rows...)
}
