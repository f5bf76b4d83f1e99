package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"txn-dashboard/pkg/config"

	"go.uber.org/zap"
)

func TestFeedClientDecodesFeed(t *testing.T) {
	srv, hits := newFeedServer(t, http.StatusOK, feedJSON)
	client := NewFeedClient(&config.FeedConfig{URL: srv.URL, Timeout: time.Second}, zap.NewNop())

	txs, err := client.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(txs) != 7 || hits.Load() != 1 {
		t.Fatalf("got %d records after %d requests", len(txs), hits.Load())
	}

	first := txs[0]
	if first.ID != 1 || first.Title != "Fjallraven Backpack" || first.Price != 109.95 ||
		first.Category != "men's clothing" || first.Sold || first.Image != "https://img/1.jpg" {
		t.Fatalf("first record = %+v", first)
	}
	wantDate := time.Date(2021, time.March, 27, 14, 59, 54, 0, time.UTC)
	if !first.DateOfSale.Equal(wantDate) {
		t.Fatalf("dateOfSale = %v, want %v", first.DateOfSale, wantDate)
	}
}

func TestFeedClientErrors(t *testing.T) {
	srv, _ := newFeedServer(t, http.StatusNotFound, "missing")
	client := NewFeedClient(&config.FeedConfig{URL: srv.URL, Timeout: time.Second}, zap.NewNop())
	if _, err := client.Fetch(context.Background()); !errors.Is(err, ErrUpstreamFetch) {
		t.Fatalf("404: err = %v", err)
	}

	client = NewFeedClient(&config.FeedConfig{URL: "http://127.0.0.1:1/feed", Timeout: time.Second}, zap.NewNop())
	if _, err := client.Fetch(context.Background()); !errors.Is(err, ErrUpstreamFetch) {
		t.Fatalf("unreachable: err = %v", err)
	}
}
