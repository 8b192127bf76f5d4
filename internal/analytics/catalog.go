package analytics

import "go-sales-dashboard/internal/model"

// Catalog declares every dashboard analysis; one generic handler serves them all
var Catalog = []model.AnalysisSpec{
	{
		Name:      "missing_data",
		Kind:      model.KindNullCount,
		Chart:     model.ChartBar,
		ResultKey: "missing_counts",
		Title:     "Missing Data per Column",
		XLabel:    "Columns",
		YLabel:    "Missing Count",
		Color:     "#FFA500",
	},
	{
		Name:      "popular_products",
		Kind:      model.KindFrequency,
		Column:    "Product",
		TopN:      10,
		Chart:     model.ChartBar,
		ResultKey: "product_counts",
		Title:     "Top 10 Popular Products",
		XLabel:    "Products",
		YLabel:    "Count",
		Color:     "#87CEEB",
		LeaderKey: "most_popular_product",
		UniqueKey: "total_unique_products",
	},
	{
		Name:      "city_sales",
		Kind:      model.KindGroupedSum,
		Column:    "City",
		Measure:   "Total_Cost",
		TopN:      10,
		Chart:     model.ChartBar,
		ResultKey: "top_cities",
		Title:     "Top 10 Cities by Sales",
		XLabel:    "City",
		YLabel:    "Total Sales",
		Color:     "#008000",
	},
	{
		Name:      "payment_distribution",
		Kind:      model.KindFrequency,
		Column:    "Payment_Method",
		Chart:     model.ChartPie,
		ResultKey: "payment_methods",
		Title:     "Payment Method Distribution",
	},
	{
		Name:      "discount_analysis",
		Kind:      model.KindFrequency,
		Column:    "Discount_Applied",
		Chart:     model.ChartBar,
		ResultKey: "discount_counts",
		Title:     "Discount Analysis",
		XLabel:    "Discount Applied",
		YLabel:    "Count",
		Color:     "#800080",
	},
	{
		Name:      "customer_category_analysis",
		Kind:      model.KindGroupedSum,
		Column:    "Customer_Category",
		Measure:   "Total_Cost",
		Chart:     model.ChartBar,
		ResultKey: "category_sales",
		Title:     "Customer Category Sales",
		XLabel:    "Customer Category",
		YLabel:    "Total Sales",
		Color:     "#FF0000",
	},
	{
		Name:      "season_sales",
		Kind:      model.KindGroupedSum,
		Column:    "Season",
		Measure:   "Total_Cost",
		Chart:     model.ChartBar,
		ResultKey: "season_sales",
		Title:     "Seasonal Sales",
		XLabel:    "Season",
		YLabel:    "Total Sales",
		Color:     "#FFD700",
	},
	{
		Name:      "promotion_analysis",
		Kind:      model.KindFrequency,
		Column:    "Promotion",
		Chart:     model.ChartBar,
		ResultKey: "promotion_counts",
		Title:     "Promotion Analysis",
		XLabel:    "Promotion",
		YLabel:    "Count",
		Color:     "#008080",
	},
}

// Lookup finds a catalog entry by name
func Lookup(name string) (model.AnalysisSpec, bool) {
	for _, spec := range Catalog {
		if spec.Name == name {
			return spec, true
		}
	}
	return model.AnalysisSpec{}, false
}
