package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"sync"

	"txn-dashboard/internal/dto"
	"txn-dashboard/internal/models"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultPage    = 1
	DefaultPerPage = 10
)

// TransactionStore is the persistence contract the service relies on.
type TransactionStore interface {
	Count(ctx context.Context) (int64, error)
	DeleteAll(ctx context.Context) error
	CreateBatch(ctx context.Context, transactions []*models.Transaction) error
	List(ctx context.Context, filter models.TransactionFilter, limit, offset int) ([]*models.Transaction, error)
	CountMatching(ctx context.Context, filter models.TransactionFilter) (int64, error)
	GroupBy(ctx context.Context, filter models.TransactionFilter, field models.GroupField) ([]models.Group, error)
}

// FeedFetcher returns the full upstream transaction snapshot.
type FeedFetcher interface {
	Fetch(ctx context.Context) ([]*models.Transaction, error)
}

type SeedStatus int

const (
	SeedInserted SeedStatus = iota
	SeedAlreadyInitialized
)

type SeedResult struct {
	Status   SeedStatus
	Inserted int
}

func (r SeedResult) Message() string {
	if r.Status == SeedAlreadyInitialized {
		return "Database is already initialized"
	}
	return "Database initialized successfully"
}

type ListParams struct {
	Month   string
	Search  string
	Page    int
	PerPage int
}

type TransactionService struct {
	store  TransactionStore
	feed   FeedFetcher
	logger *zap.Logger

	seedMu sync.Mutex
}

func NewTransactionService(store TransactionStore, feed FeedFetcher, logger *zap.Logger) *TransactionService {
	return &TransactionService{
		store:  store,
		feed:   feed,
		logger: logger,
	}
}

// Seed loads the feed into an empty store. A store holding any record is
// left untouched.
func (s *TransactionService) Seed(ctx context.Context) (SeedResult, error) {
	s.seedMu.Lock()
	defer s.seedMu.Unlock()

	count, err := s.store.Count(ctx)
	if err != nil {
		return SeedResult{}, storeError("count transactions", err)
	}
	if count > 0 {
		s.logger.Info("Database is already initialized", zap.Int64("records", count))
		return SeedResult{Status: SeedAlreadyInitialized}, nil
	}

	return s.replace(ctx)
}

// Reseed replaces the store contents with a fresh feed snapshot
// regardless of what is stored.
func (s *TransactionService) Reseed(ctx context.Context) (SeedResult, error) {
	s.seedMu.Lock()
	defer s.seedMu.Unlock()

	return s.replace(ctx)
}

// replace deletes everything and then inserts the feed. A failure between
// the two steps leaves the store empty.
func (s *TransactionService) replace(ctx context.Context) (SeedResult, error) {
	transactions, err := s.feed.Fetch(ctx)
	if err != nil {
		return SeedResult{}, err
	}

	for _, tx := range transactions {
		tx.Title = sanitizeUTF8(tx.Title)
		tx.Description = sanitizeUTF8(tx.Description)
		tx.Category = sanitizeUTF8(tx.Category)
		tx.DateOfSale = tx.DateOfSale.UTC()
	}

	if err := s.store.DeleteAll(ctx); err != nil {
		return SeedResult{}, storeError("clear transactions", err)
	}
	s.logger.Info("Existing transactions cleared")

	if err := s.store.CreateBatch(ctx, transactions); err != nil {
		return SeedResult{}, storeError("insert transactions", err)
	}
	s.logger.Info("Transactions inserted", zap.Int("count", len(transactions)))

	return SeedResult{Status: SeedInserted, Inserted: len(transactions)}, nil
}

func (s *TransactionService) ListTransactions(ctx context.Context, params ListParams) (*dto.TransactionListResponse, error) {
	page, perPage := params.Page, params.PerPage
	if page < 1 {
		page = DefaultPage
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}

	filter := s.monthFilter(params.Month)
	filter.Search = params.Search
	filter.SearchPrice = parseSearchPrice(params.Search)

	// A page past the addressable offsets is empty, not an overflow.
	transactions := make([]*models.Transaction, 0)
	if page-1 <= math.MaxInt/perPage {
		var err error
		transactions, err = s.store.List(ctx, filter, perPage, (page-1)*perPage)
		if err != nil {
			return nil, storeError("list transactions", err)
		}
	}

	total, err := s.store.CountMatching(ctx, filter)
	if err != nil {
		return nil, storeError("count transactions", err)
	}

	return &dto.TransactionListResponse{
		Transactions: transactions,
		Total:        total,
	}, nil
}

func (s *TransactionService) Statistics(ctx context.Context, month string) (*dto.StatisticsResponse, error) {
	groups, err := s.store.GroupBy(ctx, s.monthFilter(month), models.GroupBySold)
	if err != nil {
		return nil, storeError("aggregate sold status", err)
	}

	stats := &dto.StatisticsResponse{}
	for _, g := range groups {
		switch g.Key {
		case "true":
			stats.TotalSoldItems = g.Count
			stats.TotalSaleAmount = decimal.NewFromFloat(g.Sum).Round(2).InexactFloat64()
		case "false":
			stats.TotalNotSoldItems = g.Count
		}
	}

	return stats, nil
}

// BarChart counts the month's transactions per fixed price range. The
// ranges are counted concurrently; the output keeps PriceRanges order.
func (s *TransactionService) BarChart(ctx context.Context, month string) ([]dto.PriceRangeCount, error) {
	base := s.monthFilter(month)
	result := make([]dto.PriceRangeCount, len(PriceRanges))

	g, gctx := errgroup.WithContext(ctx)
	for i, pr := range PriceRanges {
		i, pr := i, pr
		result[i].Range = pr.Label
		g.Go(func() error {
			filter := base
			filter.MinPrice = pr.Min
			filter.PriceAbove = pr.Above
			filter.MaxPrice = pr.Max

			count, err := s.store.CountMatching(gctx, filter)
			if err != nil {
				return storeError(fmt.Sprintf("count price range %s", pr.Label), err)
			}
			result[i].Count = count
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *TransactionService) PieChart(ctx context.Context, month string) ([]dto.CategoryCount, error) {
	groups, err := s.store.GroupBy(ctx, s.monthFilter(month), models.GroupByCategory)
	if err != nil {
		return nil, storeError("aggregate categories", err)
	}

	result := make([]dto.CategoryCount, 0, len(groups))
	for _, g := range groups {
		result = append(result, dto.CategoryCount{Category: g.Key, Count: g.Count})
	}
	return result, nil
}

// CombinedData runs the list, statistics, bar chart and pie chart queries
// for one month in parallel with default paging. It fails if any of them
// fails.
func (s *TransactionService) CombinedData(ctx context.Context, month string) (*dto.CombinedResponse, error) {
	var (
		list  *dto.TransactionListResponse
		stats *dto.StatisticsResponse
		bar   []dto.PriceRangeCount
		pie   []dto.CategoryCount
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		list, err = s.ListTransactions(gctx, ListParams{Month: month, Page: DefaultPage, PerPage: DefaultPerPage})
		return err
	})
	g.Go(func() (err error) {
		stats, err = s.Statistics(gctx, month)
		return err
	})
	g.Go(func() (err error) {
		bar, err = s.BarChart(gctx, month)
		return err
	})
	g.Go(func() (err error) {
		pie, err = s.PieChart(gctx, month)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &dto.CombinedResponse{
		Transactions: *list,
		Statistics:   *stats,
		BarChart:     bar,
		PieChart:     pie,
	}, nil
}

func (s *TransactionService) monthFilter(month string) models.TransactionFilter {
	ordinal, ok := MonthOrdinal(month)
	if !ok {
		s.logger.Debug("Unrecognized month, query will match nothing", zap.String("month", month))
	}
	return models.TransactionFilter{Month: ordinal}
}

// parseSearchPrice returns the search term as a price when the whole term
// is a finite decimal number.
func parseSearchPrice(search string) *float64 {
	d, err := decimal.NewFromString(strings.TrimSpace(search))
	if err != nil {
		return nil
	}
	price := d.InexactFloat64()
	if math.IsInf(price, 0) || math.IsNaN(price) {
		return nil
	}
	return &price
}
