package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"txn-dashboard/internal/repository/memory"
	"txn-dashboard/pkg/config"

	"go.uber.org/zap"
)

// feedJSON mimics the upstream product feed. Record 6 is sold on
// 1 March in +05:30, which is still February in UTC.
const feedJSON = `[
 {"id":1,"title":"Fjallraven Backpack","price":109.95,"description":"Your perfect pack","category":"men's clothing","image":"https://img/1.jpg","sold":false,"dateOfSale":"2021-03-27T20:29:54+05:30"},
 {"id":2,"title":"Mens Casual T-Shirts","price":22.3,"description":"Slim-fitting style","category":"men's clothing","image":"https://img/2.jpg","sold":false,"dateOfSale":"2021-10-27T20:29:54+05:30"},
 {"id":3,"title":"Mens Cotton Jacket","price":615.89,"description":"great outerwear","category":"men's clothing","image":"https://img/3.jpg","sold":true,"dateOfSale":"2022-03-27T20:29:54+05:30"},
 {"id":4,"title":"Solid Gold Petite","price":150,"description":"Satisfaction Guaranteed","category":"jewelery","image":"https://img/4.jpg","sold":true,"dateOfSale":"2022-03-10T10:00:00Z"},
 {"id":5,"title":"WD 2TB Drive","price":64,"description":"USB 3.0 and 150 MB/s","category":"electronics","image":"https://img/5.jpg","sold":true,"dateOfSale":"2021-03-15T12:00:00Z"},
 {"id":6,"title":"Silicon Power SSD","price":999,"description":"3D NAND","category":"electronics","image":"https://img/6.jpg","sold":false,"dateOfSale":"2022-03-01T02:00:00+05:30"},
 {"id":7,"title":"Samsung Monitor","price":901,"description":"49 inch","category":"electronics","image":"https://img/7.jpg","sold":false,"dateOfSale":"2022-03-05T09:00:00Z"}
]`

const marchRecords = 5

func newFeedServer(t *testing.T, status int, body string) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	hits := &atomic.Int32{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, hits
}

func newTestService(t *testing.T, store TransactionStore, feedURL string) *TransactionService {
	t.Helper()
	feed := NewFeedClient(&config.FeedConfig{URL: feedURL, Timeout: 5 * time.Second}, zap.NewNop())
	return NewTransactionService(store, feed, zap.NewNop())
}

// seededService returns a service over a memory store loaded from feedJSON.
func seededService(t *testing.T) *TransactionService {
	t.Helper()
	srv, _ := newFeedServer(t, http.StatusOK, feedJSON)
	svc := newTestService(t, memory.New(), srv.URL)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	if _, err := svc.Seed(ctx); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return svc
}
