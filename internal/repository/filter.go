package repository

import (
	"strings"

	"txn-dashboard/internal/models"

	"github.com/Masterminds/squirrel"
)

const (
	transactionsTable = "transactions"

	saleMonthExpr = "EXTRACT(MONTH FROM date_of_sale AT TIME ZONE 'UTC')"
)

var transactionColumns = []string{
	"id", "title", "price", "description", "category", "image", "sold", "date_of_sale",
}

// likeEscaper makes a user term match literally inside a LIKE pattern
// (backslash is the default LIKE escape character in PostgreSQL).
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}

// filterPredicate renders a filter as a WHERE clause: the month check
// AND-ed with an OR over the search branches and any sold/price bounds.
func filterPredicate(f models.TransactionFilter) squirrel.Sqlizer {
	conds := squirrel.And{
		squirrel.Expr(saleMonthExpr+" = ?", f.Month),
	}

	if f.HasSearch() {
		search := squirrel.Or{}
		if f.Search != "" {
			pattern := containsPattern(f.Search)
			search = append(search,
				squirrel.ILike{"title": pattern},
				squirrel.ILike{"description": pattern},
			)
		}
		if f.SearchPrice != nil {
			search = append(search, squirrel.Eq{"price": *f.SearchPrice})
		}
		conds = append(conds, search)
	}

	if f.Sold != nil {
		conds = append(conds, squirrel.Eq{"sold": *f.Sold})
	}
	if f.MinPrice != nil {
		conds = append(conds, squirrel.GtOrEq{"price": *f.MinPrice})
	}
	if f.PriceAbove != nil {
		conds = append(conds, squirrel.Gt{"price": *f.PriceAbove})
	}
	if f.MaxPrice != nil {
		conds = append(conds, squirrel.LtOrEq{"price": *f.MaxPrice})
	}

	return conds
}

func groupKeyExpr(field models.GroupField) (string, bool) {
	switch field {
	case models.GroupByCategory:
		return "category", true
	case models.GroupBySold:
		return "sold::text", true
	default:
		return "", false
	}
}

func listQuery(f models.TransactionFilter, limit, offset int) squirrel.SelectBuilder {
	return squirrel.Select(transactionColumns...).
		From(transactionsTable).
		Where(filterPredicate(f)).
		OrderBy("row_id").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		PlaceholderFormat(squirrel.Dollar)
}

func countQuery(f models.TransactionFilter) squirrel.SelectBuilder {
	return squirrel.Select("COUNT(*)").
		From(transactionsTable).
		Where(filterPredicate(f)).
		PlaceholderFormat(squirrel.Dollar)
}

func groupQuery(f models.TransactionFilter, keyExpr string) squirrel.SelectBuilder {
	return squirrel.Select(keyExpr, "COUNT(*)", "COALESCE(SUM(price), 0)").
		From(transactionsTable).
		Where(filterPredicate(f)).
		GroupBy(keyExpr).
		OrderBy(keyExpr).
		PlaceholderFormat(squirrel.Dollar)
}
