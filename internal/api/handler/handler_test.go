package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"testing"

	"go-sales-dashboard/internal/analytics"
	"go-sales-dashboard/internal/chart"
	"go-sales-dashboard/internal/model"
	"go-sales-dashboard/internal/store"

	json "github.com/goccy/go-json"
)

// salesCSV has 8 rows; only rows 2, 3 and 5 are complete ("None" counts as missing)
const salesCSV = `Product,City,Total_Cost,Payment_Method,Discount_Applied,Customer_Category,Season,Promotion
Apple,Boston,10.5,Cash,True,Student,Winter,None
Bread,Chicago,4.25,Credit Card,False,Retiree,Spring,BOGO
Apple,Boston,3.5,Cash,True,Student,Winter,Discount
Milk,Denver,12,Debit Card,False,Professional,Summer,None
Bread,Boston,2.5,Cash,True,Student,Fall,BOGO
,Chicago,6,Mobile Payment,False,Retiree,Winter,None
Apple,,8.75,Cash,True,Professional,Spring,Discount
Eggs,Denver,,Credit Card,False,Student,Summer,BOGO
`

func newDataset(t *testing.T, csv string) *store.Dataset {
	t.Helper()
	df, err := store.ParseCSV(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("ParseCSV: %v", err)
	}
	return store.New("test.csv", df)
}

func newHandler(t *testing.T, csv string) *Handler {
	t.Helper()
	r, err := chart.NewRenderer(t.TempDir(), 640, 400)
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	return New(newDataset(t, csv), r)
}

func call(t *testing.T, fn func(http.ResponseWriter, *http.Request), path string) (int, map[string]interface{}) {
	t.Helper()
	rec := httptest.NewRecorder()
	fn(rec, httptest.NewRequest(http.MethodGet, path, nil))
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("%s: content type = %q", path, ct)
	}
	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("%s: decode %q: %v", path, rec.Body.String(), err)
	}
	return rec.Code, body
}

func analysis(t *testing.T, h *Handler, name string) func(http.ResponseWriter, *http.Request) {
	t.Helper()
	spec, ok := analytics.Lookup(name)
	if !ok {
		t.Fatalf("analysis %q not in catalog", name)
	}
	return h.Analysis(spec)
}

func TestGetDataPreview(t *testing.T) {
	var b strings.Builder
	b.WriteString("Product,Total_Cost\n")
	for i := 0; i < 25; i++ {
		fmt.Fprintf(&b, "p%d,%d\n", i, i)
	}
	h := newHandler(t, b.String())

	status, body := call(t, h.GetData, "/get_data")
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	if rows := body["data"].([]interface{}); len(rows) != 10 {
		t.Errorf("preview rows = %d, want 10", len(rows))
	}
	if body["total_rows"].(float64) != 25 {
		t.Errorf("total_rows = %v, want 25", body["total_rows"])
	}
}

func TestGeneralInfo(t *testing.T) {
	h := newHandler(t, salesCSV)
	status, body := call(t, h.GeneralInfo, "/general_info")
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	if body["total_rows"].(float64) != 8 || body["total_columns"].(float64) != 8 {
		t.Errorf("counts = %v x %v", body["total_rows"], body["total_columns"])
	}
	dtypes := body["dtypes"].(map[string]interface{})
	if dtypes["Total_Cost"] != "float64" || dtypes["Product"] != "object" {
		t.Errorf("dtypes = %v", dtypes)
	}
	if cols := body["columns"].([]interface{}); cols[0] != "Product" {
		t.Errorf("columns = %v", cols)
	}
}

func TestRemoveMissingIsIdempotentAndResettable(t *testing.T) {
	h := newHandler(t, salesCSV)

	_, first := call(t, h.RemoveMissing, "/remove_missing")
	_, second := call(t, h.RemoveMissing, "/remove_missing")
	if first["total_rows"].(float64) != 3 || second["total_rows"].(float64) != 3 {
		t.Fatalf("total_rows = %v then %v, want 3", first["total_rows"], second["total_rows"])
	}
	for _, row := range second["data"].([]interface{}) {
		for col, v := range row.(map[string]interface{}) {
			if v == nil {
				t.Errorf("column %s still has a missing value", col)
			}
		}
	}

	_, info := call(t, h.GeneralInfo, "/general_info")
	if info["total_rows"].(float64) != 3 {
		t.Errorf("general_info after filter = %v rows", info["total_rows"])
	}

	_, reset := call(t, h.ResetData, "/reset_data")
	if reset["total_rows"].(float64) != 8 {
		t.Errorf("total_rows after reset = %v, want 8", reset["total_rows"])
	}
}

func TestAnalysesWriteCharts(t *testing.T) {
	h := newHandler(t, salesCSV)

	for _, spec := range analytics.Catalog {
		t.Run(spec.Name, func(t *testing.T) {
			status, body := call(t, h.Analysis(spec), "/"+spec.Name)
			if status != http.StatusOK {
				t.Fatalf("status = %d, body = %v", status, body)
			}
			if _, ok := body[spec.ResultKey].(map[string]interface{}); !ok {
				t.Errorf("missing %s in %v", spec.ResultKey, body)
			}
			graph, _ := body["graph"].(string)
			if !strings.HasSuffix(graph, spec.ChartFile()) {
				t.Errorf("graph = %q", graph)
			}
			if _, err := os.Stat(graph); err != nil {
				t.Errorf("graph not on disk: %v", err)
			}
		})
	}
}

func TestPopularProductsPayload(t *testing.T) {
	h := newHandler(t, "Product\nA\nA\nB\n")
	status, body := call(t, analysis(t, h, "popular_products"), "/popular_products")
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	if body["most_popular_product"] != "A" || body["count"].(float64) != 2 || body["total_unique_products"].(float64) != 2 {
		t.Errorf("summary = %v", body)
	}
	counts := body["product_counts"].(map[string]interface{})
	if counts["A"].(float64) != 2 || counts["B"].(float64) != 1 {
		t.Errorf("product_counts = %v", counts)
	}
}

func TestAnalysisKeepsBucketOrderInJSON(t *testing.T) {
	h := newHandler(t, salesCSV)
	rec := httptest.NewRecorder()
	analysis(t, h, "city_sales")(rec, httptest.NewRequest(http.MethodGet, "/city_sales", nil))

	// Boston 16.5, Denver 12, Chicago 10.25
	body := rec.Body.String()
	b, d, c := strings.Index(body, `"Boston"`), strings.Index(body, `"Denver"`), strings.Index(body, `"Chicago"`)
	if b < 0 || !(b < d && d < c) {
		t.Errorf("cities out of order: %s", body)
	}
}

func TestAnalysisMissingColumn(t *testing.T) {
	h := newHandler(t, "City,Total_Cost\nBoston,1\n")
	status, body := call(t, analysis(t, h, "popular_products"), "/popular_products")
	if status != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", status)
	}
	if msg, _ := body["error"].(string); !strings.Contains(msg, "Product") {
		t.Errorf("error = %q", msg)
	}
}

func TestAnalysisNonNumericMeasure(t *testing.T) {
	h := newHandler(t, "City,Total_Cost\nBoston,cheap\n")
	status, _ := call(t, analysis(t, h, "city_sales"), "/city_sales")
	if status != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", status)
	}
}

func TestAnalysisAfterEverythingFiltered(t *testing.T) {
	h := newHandler(t, "Product,Season\nA,\n,Winter\n")
	call(t, h.RemoveMissing, "/remove_missing")

	status, _ := call(t, analysis(t, h, "popular_products"), "/popular_products")
	if status != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", status)
	}
}

type failingRenderer struct{ err error }

func (f failingRenderer) Render(context.Context, model.ChartSpec, string) (string, error) {
	return "", f.err
}

func TestAnalysisRenderFailure(t *testing.T) {
	h := New(newDataset(t, salesCSV), failingRenderer{err: errors.New("disk full")})
	status, body := call(t, analysis(t, h, "season_sales"), "/season_sales")
	if status != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", status)
	}
	if body["error"] != "disk full" {
		t.Errorf("error = %v", body["error"])
	}
}

func TestAnalysesDuringFilter(t *testing.T) {
	h := newHandler(t, salesCSV)
	payments := analysis(t, h, "payment_distribution")

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			rec := httptest.NewRecorder()
			h.RemoveMissing(rec, httptest.NewRequest(http.MethodGet, "/remove_missing", nil))
		}()
		go func() {
			defer wg.Done()
			rec := httptest.NewRecorder()
			payments(rec, httptest.NewRequest(http.MethodGet, "/payment_distribution", nil))
			if rec.Code != http.StatusOK {
				t.Errorf("status = %d", rec.Code)
			}
		}()
	}
	wg.Wait()
}

func TestIndex(t *testing.T) {
	h := newHandler(t, salesCSV)
	status, body := call(t, h.Index, "/")
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	endpoints := body["endpoints"].([]interface{})
	if len(endpoints) != len(DatasetRoutes)+len(analytics.Catalog) {
		t.Errorf("endpoints = %v", endpoints)
	}
	if body["source"] != "test.csv" {
		t.Errorf("source = %v", body["source"])
	}
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("'x' %w", analytics.ErrMissingColumn), http.StatusUnprocessableEntity},
		{analytics.ErrEmptyAggregate, http.StatusUnprocessableEntity},
		{fmt.Errorf("draw: %w", chart.ErrNothingToDraw), http.StatusUnprocessableEntity},
		{context.Canceled, http.StatusServiceUnavailable},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if got := statusFor(tt.err); got != tt.want {
			t.Errorf("statusFor(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}
