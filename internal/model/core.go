package model

// GenericRecord is a schema-agnostic row: column name -> cell value (nil when missing)
type GenericRecord map[string]interface{}

// AnalysisKind selects how an analysis reduces the working table
type AnalysisKind string

const (
	KindFrequency  AnalysisKind = "frequency"   // count of each distinct value
	KindGroupedSum AnalysisKind = "grouped_sum" // sum of a numeric column per group
	KindNullCount  AnalysisKind = "null_count"  // missing cells per column
)

// ChartKind is the figure drawn for an analysis
type ChartKind string

const (
	ChartBar ChartKind = "bar"
	ChartPie ChartKind = "pie"
)

// ValidationRules defines what a table must provide before an analysis can run
type ValidationRules struct {
	RequiredFields []string `json:"requiredFields"` // columns that must be present
	NumericFields  []string `json:"numericFields"`  // columns that must hold numbers
}

// AnalysisSpec declares one dashboard endpoint: group/filter -> measure -> chart
type AnalysisSpec struct {
	Name      string       `json:"name"`              // route name and chart file stem
	Kind      AnalysisKind `json:"kind"`              // frequency, grouped_sum, null_count
	Column    string       `json:"column,omitempty"`  // group-by / counted column
	Measure   string       `json:"measure,omitempty"` // summed column for grouped_sum
	TopN      int          `json:"topN,omitempty"`    // 0 keeps every group
	Chart     ChartKind    `json:"chart"`
	ResultKey string       `json:"resultKey"` // JSON field holding the aggregate
	Title     string       `json:"title"`
	XLabel    string       `json:"xLabel,omitempty"`
	YLabel    string       `json:"yLabel,omitempty"`
	Color     string       `json:"color,omitempty"` // hex fill colour for bar charts

	// frequency only: JSON fields naming the top value and the distinct count
	LeaderKey string `json:"leaderKey,omitempty"`
	UniqueKey string `json:"uniqueKey,omitempty"`
}

// Rules derives the column requirements of the analysis
func (s AnalysisSpec) Rules() ValidationRules {
	var rules ValidationRules
	if s.Column != "" {
		rules.RequiredFields = append(rules.RequiredFields, s.Column)
	}
	if s.Measure != "" {
		rules.RequiredFields = append(rules.RequiredFields, s.Measure)
		rules.NumericFields = append(rules.NumericFields, s.Measure)
	}
	return rules
}

// ChartFile is the deterministic artifact name of the analysis
func (s AnalysisSpec) ChartFile() string {
	return s.Name + ".png"
}
