package repository

import (
	"context"
	"fmt"

	"txn-dashboard/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// insertChunkSize keeps multi-row inserts well below PostgreSQL's bind
// parameter limit.
const insertChunkSize = 1000

type TransactionRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewTransactionRepository(db *pgxpool.Pool, logger *zap.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:     db,
		logger: logger,
	}
}

func (r *TransactionRepository) Count(ctx context.Context) (int64, error) {
	query := squirrel.Select("COUNT(*)").
		From(transactionsTable).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *TransactionRepository) DeleteAll(ctx context.Context) error {
	sql, args, err := squirrel.Delete(transactionsTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}

	r.logger.Debug("Deleted transactions", zap.Int64("rows", tag.RowsAffected()))
	return nil
}

func (r *TransactionRepository) CreateBatch(ctx context.Context, transactions []*models.Transaction) error {
	for start := 0; start < len(transactions); start += insertChunkSize {
		end := min(start+insertChunkSize, len(transactions))
		if err := r.insertChunk(ctx, transactions[start:end]); err != nil {
			return fmt.Errorf("insert rows %d-%d: %w", start, end, err)
		}
	}
	return nil
}

func (r *TransactionRepository) insertChunk(ctx context.Context, transactions []*models.Transaction) error {
	if len(transactions) == 0 {
		return nil
	}

	builder := squirrel.Insert(transactionsTable).
		Columns(transactionColumns...).
		PlaceholderFormat(squirrel.Dollar)

	for _, tx := range transactions {
		builder = builder.Values(tx.ID, tx.Title, tx.Price, tx.Description, tx.Category, tx.Image, tx.Sold, tx.DateOfSale)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *TransactionRepository) List(ctx context.Context, filter models.TransactionFilter, limit, offset int) ([]*models.Transaction, error) {
	sql, args, err := listQuery(filter, limit, offset).ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	transactions := make([]*models.Transaction, 0)
	for rows.Next() {
		var tx models.Transaction
		if err := rows.Scan(
			&tx.ID, &tx.Title, &tx.Price, &tx.Description, &tx.Category, &tx.Image, &tx.Sold, &tx.DateOfSale,
		); err != nil {
			return nil, err
		}
		tx.DateOfSale = tx.DateOfSale.UTC()
		transactions = append(transactions, &tx)
	}

	return transactions, rows.Err()
}

func (r *TransactionRepository) CountMatching(ctx context.Context, filter models.TransactionFilter) (int64, error) {
	sql, args, err := countQuery(filter).ToSql()
	if err != nil {
		return 0, err
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// GroupBy aggregates matching transactions by field, returning the row
// count and price sum of every group ordered by key.
func (r *TransactionRepository) GroupBy(ctx context.Context, filter models.TransactionFilter, field models.GroupField) ([]models.Group, error) {
	keyExpr, ok := groupKeyExpr(field)
	if !ok {
		return nil, fmt.Errorf("unsupported group field %q", field)
	}

	sql, args, err := groupQuery(filter, keyExpr).ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var groups []models.Group
	for rows.Next() {
		var g models.Group
		if err := rows.Scan(&g.Key, &g.Count, &g.Sum); err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}

	return groups, rows.Err()
}
