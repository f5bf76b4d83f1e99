package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"txn-dashboard/internal/api/handlers"
	"txn-dashboard/internal/dto"
	"txn-dashboard/internal/models"
	"txn-dashboard/internal/repository/memory"
	"txn-dashboard/internal/service"
	"txn-dashboard/pkg/config"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const feedJSON = `[
 {"id":1,"title":"Backpack","price":109.95,"description":"Your perfect pack","category":"men's clothing","image":"i1","sold":true,"dateOfSale":"2021-03-27T10:00:00Z"},
 {"id":2,"title":"Gold Ring","price":150,"description":"Satisfaction Guaranteed","category":"jewelery","image":"i2","sold":false,"dateOfSale":"2022-03-10T10:00:00Z"},
 {"id":3,"title":"SSD","price":1099,"description":"3D NAND","category":"electronics","image":"i3","sold":true,"dateOfSale":"2022-07-01T10:00:00Z"}
]`

type failingStore struct{ *memory.Store }

func (failingStore) Count(context.Context) (int64, error) { return 0, errors.New("connection refused") }
func (failingStore) CountMatching(context.Context, models.TransactionFilter) (int64, error) {
	return 0, errors.New("connection refused")
}

func newTestApp(t *testing.T, store service.TransactionStore, feedStatus int) *fiber.App {
	t.Helper()
	feed := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(feedStatus)
		_, _ = io.WriteString(w, feedJSON)
	}))
	t.Cleanup(feed.Close)

	logger := zap.NewNop()
	client := service.NewFeedClient(&config.FeedConfig{URL: feed.URL, Timeout: time.Second}, logger)
	svc := service.NewTransactionService(store, client, logger)
	return SetupRouter(handlers.NewTransactionHandler(svc, logger), &config.ServerConfig{}, logger)
}

func get(t *testing.T, app *fiber.App, target string, out any) int {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil), -1)
	if err != nil {
		t.Fatalf("GET %s: %v", target, err)
	}
	defer resp.Body.Close()
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("GET %s: decode: %v", target, err)
		}
	}
	return resp.StatusCode
}

func TestInitializeDatabase(t *testing.T) {
	app := newTestApp(t, memory.New(), http.StatusOK)

	var msg dto.MessageResponse
	if code := get(t, app, "/api/initialize-database", &msg); code != 200 || msg.Message != "Database initialized successfully" {
		t.Fatalf("first call: %d %+v", code, msg)
	}
	if code := get(t, app, "/api/initialize-database", &msg); code != 200 || msg.Message != "Database is already initialized" {
		t.Fatalf("second call: %d %+v", code, msg)
	}
}

func TestInitializeDatabaseFeedFailure(t *testing.T) {
	app := newTestApp(t, memory.New(), http.StatusInternalServerError)

	var body dto.ErrorResponse
	if code := get(t, app, "/api/initialize-database", &body); code != 500 || body.Error != "Failed to initialize database" {
		t.Fatalf("got %d %+v", code, body)
	}
}

func TestQueryEndpoints(t *testing.T) {
	app := newTestApp(t, memory.New(), http.StatusOK)
	get(t, app, "/api/initialize-database", nil)

	var list dto.TransactionListResponse
	if code := get(t, app, "/api/transactions?month=March&search=150&page=1&perPage=10", &list); code != 200 {
		t.Fatalf("transactions status %d", code)
	}
	if list.Total != 1 || len(list.Transactions) != 1 || list.Transactions[0].Title != "Gold Ring" {
		t.Fatalf("transactions = %+v", list)
	}

	// non-numeric paging falls back to defaults
	if code := get(t, app, "/api/transactions?month=March&page=abc&perPage=x", &list); code != 200 || list.Total != 2 || len(list.Transactions) != 2 {
		t.Fatalf("lenient paging: %d %+v", code, list)
	}

	var stats dto.StatisticsResponse
	get(t, app, "/api/statistics?month=March", &stats)
	if stats != (dto.StatisticsResponse{TotalSaleAmount: 109.95, TotalSoldItems: 1, TotalNotSoldItems: 1}) {
		t.Fatalf("statistics = %+v", stats)
	}

	var bar []dto.PriceRangeCount
	get(t, app, "/api/bar-chart?month=July", &bar)
	if len(bar) != 10 || bar[0].Range != "0-100" || bar[9].Range != "901-above" || bar[9].Count != 1 {
		t.Fatalf("bar chart = %+v", bar)
	}

	var pie []dto.CategoryCount
	get(t, app, "/api/pie-chart?month=March", &pie)
	if len(pie) != 2 || pie[0] != (dto.CategoryCount{Category: "jewelery", Count: 1}) {
		t.Fatalf("pie chart = %+v", pie)
	}

	var combined dto.CombinedResponse
	get(t, app, "/api/combined-data?month=March", &combined)
	if combined.Transactions.Total != 2 || combined.Statistics != stats || len(combined.BarChart) != 10 || len(combined.PieChart) != 2 {
		t.Fatalf("combined = %+v", combined)
	}
}

func TestUnknownMonthIsNotAnError(t *testing.T) {
	app := newTestApp(t, memory.New(), http.StatusOK)
	get(t, app, "/api/initialize-database", nil)

	var list dto.TransactionListResponse
	if code := get(t, app, "/api/transactions?month=Smarch", &list); code != 200 || list.Total != 0 {
		t.Fatalf("got %d %+v", code, list)
	}
	if list.Transactions == nil {
		t.Fatal("transactions should encode as an empty array")
	}

	var pie []dto.CategoryCount
	if code := get(t, app, "/api/pie-chart?month=Smarch", &pie); code != 200 || len(pie) != 0 {
		t.Fatalf("got %d %+v", code, pie)
	}
}

func TestStoreFailureMapsTo500(t *testing.T) {
	app := newTestApp(t, failingStore{memory.New()}, http.StatusOK)

	cases := map[string]string{
		"/api/initialize-database":      "Failed to initialize database",
		"/api/transactions?month=March": "Failed to fetch transactions",
		"/api/bar-chart?month=March":    "Failed to fetch bar chart data",
		"/api/combined-data?month=May":  "Failed to fetch combined data",
	}
	for target, want := range cases {
		var body dto.ErrorResponse
		if code := get(t, app, target, &body); code != 500 || body.Error != want {
			t.Errorf("%s: %d %+v", target, code, body)
		}
	}
}

func TestHealthAndUnknownRoute(t *testing.T) {
	app := newTestApp(t, memory.New(), http.StatusOK)

	var health dto.HealthResponse
	if code := get(t, app, "/healthz", &health); code != 200 || health.Status != "ok" {
		t.Fatalf("healthz: %d %+v", code, health)
	}

	var body dto.ErrorResponse
	if code := get(t, app, "/api/nope", &body); code != 404 || body.Error == "" {
		t.Fatalf("unknown route: %d %+v", code, body)
	}
}

func TestDashboardClientServedOnlyWhenDeployed(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	app := newTestApp(t, memory.New(), http.StatusOK)
	if code := get(t, app, "/", nil); code != 404 {
		t.Fatalf("no client deployed: GET / = %d, want 404", code)
	}

	if err := os.MkdirAll(filepath.Join(dir, "web", "static"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "web", "static", "index.html"), []byte("<html></html>"), 0o644); err != nil {
		t.Fatal(err)
	}
	app = newTestApp(t, memory.New(), http.StatusOK)
	if code := get(t, app, "/", nil); code != 200 {
		t.Fatalf("client deployed: GET / = %d, want 200", code)
	}
}

func TestResponsesAreStable(t *testing.T) {
	app := newTestApp(t, memory.New(), http.StatusOK)
	get(t, app, "/api/initialize-database", nil)

	read := func() string {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/combined-data?month=March", nil), -1)
		if err != nil {
			t.Fatal(err)
		}
		defer resp.Body.Close()
		b, _ := io.ReadAll(resp.Body)
		return string(b)
	}
	if first, second := read(), read(); first != second {
		t.Fatalf("responses differ:\n%s\n%s", first, second)
	}
}
