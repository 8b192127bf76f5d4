package analytics

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"go-sales-dashboard/internal/model"
	"go-sales-dashboard/internal/store"

	"github.com/go-gota/gota/dataframe"
)

const retailCSV = `Product,City,Total_Cost,Payment_Method,Discount_Applied,Customer_Category,Season,Promotion
Apple,Boston,10.5,Cash,True,Student,Winter,None
Bread,Chicago,4.25,Credit Card,False,Retiree,Spring,BOGO
Apple,Boston,3.5,Cash,True,Student,Winter,Discount
Milk,Denver,12,Debit Card,False,Professional,Summer,None
Bread,Boston,2.5,Cash,True,Student,Fall,BOGO
,Chicago,6,Mobile Payment,False,Retiree,Winter,None
Apple,,8.75,Cash,True,Professional,Spring,Discount
Eggs,Denver,,Credit Card,False,Student,Summer,BOGO
`

func parse(t *testing.T, data string) dataframe.DataFrame {
	t.Helper()
	df, err := store.ParseCSV(strings.NewReader(data))
	if err != nil {
		t.Fatalf("ParseCSV: %v", err)
	}
	return df
}

func spec(t *testing.T, name string) model.AnalysisSpec {
	t.Helper()
	s, ok := Lookup(name)
	if !ok {
		t.Fatalf("analysis %q not in catalog", name)
	}
	return s
}

func TestPopularProductsExample(t *testing.T) {
	df := parse(t, "Product\nA\nA\nB\n")

	res, err := Compute(df, spec(t, "popular_products"))
	if err != nil {
		t.Fatal(err)
	}
	if res.Extras["most_popular_product"] != "A" {
		t.Errorf("most_popular_product = %v, want A", res.Extras["most_popular_product"])
	}
	if res.Extras["count"] != 2 {
		t.Errorf("count = %v, want 2", res.Extras["count"])
	}
	if res.Extras["total_unique_products"] != 2 {
		t.Errorf("total_unique_products = %v, want 2", res.Extras["total_unique_products"])
	}
}

func TestFrequencyTopTenWithTies(t *testing.T) {
	// p0 appears 13 times, p1 12 times ... p12 once; then p13 and p14 tie with p9
	var b strings.Builder
	b.WriteString("Product\n")
	for i := 0; i < 13; i++ {
		for j := 0; j < 13-i; j++ {
			fmt.Fprintf(&b, "p%d\n", i)
		}
	}
	for _, p := range []string{"p13", "p14"} {
		for j := 0; j < 4; j++ {
			fmt.Fprintf(&b, "%s\n", p)
		}
	}
	df := parse(t, b.String())

	res, err := Compute(df, spec(t, "popular_products"))
	if err != nil {
		t.Fatal(err)
	}
	got := res.Aggregate.Labels()
	want := []string{"p0", "p1", "p2", "p3", "p4", "p5", "p6", "p7", "p8", "p9"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("top10 = %v, want %v", got, want)
	}
	if res.Extras["total_unique_products"] != 15 {
		t.Errorf("total_unique_products = %v, want 15 (all distinct values)", res.Extras["total_unique_products"])
	}
}

func TestValueCountsSkipsMissingAndKeepsFirstSeenOrder(t *testing.T) {
	df := parse(t, retailCSV)
	counts := ValueCounts(df.Col("Promotion"))

	// "None" is a missing marker, so only BOGO and Discount are counted
	want := model.Aggregate{{Label: "BOGO", Value: 3}, {Label: "Discount", Value: 2}}
	if len(counts) != len(want) {
		t.Fatalf("counts = %v, want %v", counts, want)
	}
	for i := range want {
		if counts[i] != want[i] {
			t.Errorf("counts[%d] = %v, want %v", i, counts[i], want[i])
		}
	}

	pay := ValueCounts(df.Col("Payment_Method"))
	if pay[0].Label != "Cash" || pay[0].Value != 4 {
		t.Errorf("top payment = %v", pay[0])
	}
	// Credit Card (2) then Debit Card and Mobile Payment tied at 1 in first-seen order
	if strings.Join(pay.Labels(), ",") != "Cash,Credit Card,Debit Card,Mobile Payment" {
		t.Errorf("payment order = %v", pay.Labels())
	}
}

func TestGroupedSumMatchesColumnTotal(t *testing.T) {
	df := parse(t, retailCSV)

	for _, name := range []string{"customer_category_analysis", "season_sales"} {
		s := spec(t, name)
		res, err := Compute(df, s)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		// every row has a category and season; the missing cost is skipped
		if got, want := res.Aggregate.Total(), 47.5; got != want {
			t.Errorf("%s total = %v, want %v", name, got, want)
		}
	}

	res, err := Compute(df, spec(t, "season_sales"))
	if err != nil {
		t.Fatal(err)
	}
	if strings.Join(res.Aggregate.Labels(), ",") != "Fall,Spring,Summer,Winter" {
		t.Errorf("groups should be ordered by key, got %v", res.Aggregate.Labels())
	}
}

func TestCitySalesSortedDescending(t *testing.T) {
	df := parse(t, retailCSV)
	res, err := Compute(df, spec(t, "city_sales"))
	if err != nil {
		t.Fatal(err)
	}
	want := model.Aggregate{
		{Label: "Boston", Value: 16.5},
		{Label: "Denver", Value: 12},
		{Label: "Chicago", Value: 10.25},
	}
	if len(res.Aggregate) != len(want) {
		t.Fatalf("city sales = %v", res.Aggregate)
	}
	for i := range want {
		if res.Aggregate[i] != want[i] {
			t.Errorf("city[%d] = %v, want %v", i, res.Aggregate[i], want[i])
		}
	}
}

func TestGroupedSumNumericKeysSortNumerically(t *testing.T) {
	df := parse(t, "Store,Total_Cost\n10,1\n9,2\n100,3\n9,4\n")
	got := GroupedSum(df, "Store", "Total_Cost")
	if strings.Join(got.Labels(), ",") != "9,10,100" {
		t.Errorf("labels = %v, want numeric order", got.Labels())
	}
	if got[0].Value != 6 {
		t.Errorf("store 9 sum = %v, want 6", got[0].Value)
	}
}

func TestMissingDataCountsPerColumn(t *testing.T) {
	df := parse(t, retailCSV)
	res, err := Compute(df, spec(t, "missing_data"))
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]float64{"Product": 1, "City": 1, "Total_Cost": 1, "Promotion": 3, "Season": 0}
	for _, b := range res.Aggregate {
		if w, ok := want[b.Label]; ok && b.Value != w {
			t.Errorf("missing[%s] = %v, want %v", b.Label, b.Value, w)
		}
	}
	if res.Aggregate[0].Label != "Product" || len(res.Aggregate) != 8 {
		t.Errorf("expected one bucket per column in column order, got %v", res.Aggregate.Labels())
	}
}

func TestComputeValidation(t *testing.T) {
	df := parse(t, "City,Total_Cost\nBoston,abc\n")

	_, err := Compute(df, spec(t, "popular_products"))
	if !errors.Is(err, ErrMissingColumn) {
		t.Fatalf("err = %v, want ErrMissingColumn", err)
	}
	if err.Error() != "'Product' column not found in dataset" {
		t.Errorf("message = %q", err.Error())
	}
	if !IsInputError(err) {
		t.Error("missing column should be an input error")
	}

	_, err = Compute(df, spec(t, "city_sales"))
	if !errors.Is(err, ErrNonNumericColumn) {
		t.Errorf("err = %v, want ErrNonNumericColumn", err)
	}

	_, err = Compute(df, model.AnalysisSpec{Name: "x", Kind: "median"})
	if !errors.Is(err, ErrUnknownKind) || IsInputError(err) {
		t.Errorf("err = %v, want ErrUnknownKind", err)
	}
}

func TestComputeEmptyAggregate(t *testing.T) {
	df := parse(t, "Product,Total_Cost\n,1\n")
	_, err := Compute(df, spec(t, "popular_products"))
	if !errors.Is(err, ErrEmptyAggregate) {
		t.Errorf("err = %v, want ErrEmptyAggregate", err)
	}
}

func TestCatalogIsConsistent(t *testing.T) {
	seen := map[string]bool{}
	for _, s := range Catalog {
		if seen[s.Name] {
			t.Errorf("duplicate analysis %q", s.Name)
		}
		seen[s.Name] = true
		if s.ResultKey == "" || s.Title == "" {
			t.Errorf("%s: result key and title are required", s.Name)
		}
		if s.Kind == model.KindGroupedSum && s.Measure == "" {
			t.Errorf("%s: grouped sum needs a measure", s.Name)
		}
	}
	if len(Catalog) != 8 {
		t.Errorf("catalog has %d analyses, want 8", len(Catalog))
	}
}
