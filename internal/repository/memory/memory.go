// Package memory is an in-process transaction store with the same filter
// semantics as the PostgreSQL repository. It backs STORE_DRIVER=memory and
// the service tests.
package memory

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"txn-dashboard/internal/models"
)

type Store struct {
	mu    sync.RWMutex
	items []models.Transaction
}

func New(seed ...models.Transaction) *Store {
	return &Store{items: append([]models.Transaction(nil), seed...)}
}

func (s *Store) Count(_ context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.items)), nil
}

func (s *Store) DeleteAll(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	return nil
}

func (s *Store) CreateBatch(_ context.Context, transactions []*models.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, tx := range transactions {
		s.items = append(s.items, *tx)
	}
	return nil
}

// List returns copies of matching transactions in insertion order.
func (s *Store) List(_ context.Context, filter models.TransactionFilter, limit, offset int) ([]*models.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Transaction, 0)
	skipped := 0
	for i := range s.items {
		if len(out) >= limit {
			break
		}
		if !matches(filter, &s.items[i]) {
			continue
		}
		if skipped < offset {
			skipped++
			continue
		}
		tx := s.items[i]
		out = append(out, &tx)
	}
	return out, nil
}

func (s *Store) CountMatching(_ context.Context, filter models.TransactionFilter) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int64
	for i := range s.items {
		if matches(filter, &s.items[i]) {
			n++
		}
	}
	return n, nil
}

func (s *Store) GroupBy(_ context.Context, filter models.TransactionFilter, field models.GroupField) ([]models.Group, error) {
	var key func(*models.Transaction) string
	switch field {
	case models.GroupByCategory:
		key = func(tx *models.Transaction) string { return tx.Category }
	case models.GroupBySold:
		key = func(tx *models.Transaction) string { return strconv.FormatBool(tx.Sold) }
	default:
		return nil, fmt.Errorf("unsupported group field %q", field)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	index := make(map[string]int)
	var groups []models.Group
	for i := range s.items {
		tx := &s.items[i]
		if !matches(filter, tx) {
			continue
		}
		k := key(tx)
		pos, ok := index[k]
		if !ok {
			pos = len(groups)
			index[k] = pos
			groups = append(groups, models.Group{Key: k})
		}
		groups[pos].Count++
		groups[pos].Sum += tx.Price
	}

	sort.Slice(groups, func(i, j int) bool { return groups[i].Key < groups[j].Key })
	return groups, nil
}

func matches(f models.TransactionFilter, tx *models.Transaction) bool {
	if int(tx.DateOfSale.UTC().Month()) != f.Month {
		return false
	}
	if f.HasSearch() && !matchesSearch(f, tx) {
		return false
	}
	if f.Sold != nil && tx.Sold != *f.Sold {
		return false
	}
	if f.MinPrice != nil && tx.Price < *f.MinPrice {
		return false
	}
	if f.PriceAbove != nil && tx.Price <= *f.PriceAbove {
		return false
	}
	if f.MaxPrice != nil && tx.Price > *f.MaxPrice {
		return false
	}
	return true
}

func matchesSearch(f models.TransactionFilter, tx *models.Transaction) bool {
	if f.Search != "" {
		term := strings.ToLower(f.Search)
		if strings.Contains(strings.ToLower(tx.Title), term) ||
			strings.Contains(strings.ToLower(tx.Description), term) {
			return true
		}
	}
	return f.SearchPrice != nil && tx.Price == *f.SearchPrice
}
