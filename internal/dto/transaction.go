package dto

import "txn-dashboard/internal/models"

type TransactionListResponse struct {
	Transactions []*models.Transaction `json:"transactions"`
	Total        int64                 `json:"total"`
}

type StatisticsResponse struct {
	TotalSaleAmount   float64 `json:"totalSaleAmount"`
	TotalSoldItems    int64   `json:"totalSoldItems"`
	TotalNotSoldItems int64   `json:"totalNotSoldItems"`
}

type PriceRangeCount struct {
	Range string `json:"range"`
	Count int64  `json:"count"`
}

type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

type CombinedResponse struct {
	Transactions TransactionListResponse `json:"transactions"`
	Statistics   StatisticsResponse      `json:"statistics"`
	BarChart     []PriceRangeCount       `json:"barChart"`
	PieChart     []CategoryCount         `json:"pieChart"`
}
