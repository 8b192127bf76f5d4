package analytics

import (
	"fmt"
	"sort"
	"strconv"

	"go-sales-dashboard/internal/model"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Compute runs one analysis over a table snapshot. It performs no I/O;
// drawing the chart is a separate step.
func Compute(df dataframe.DataFrame, spec model.AnalysisSpec) (*model.AnalysisResult, error) {
	if err := ValidateColumns(df, spec.Rules()); err != nil {
		return nil, err
	}

	result := &model.AnalysisResult{Spec: spec, RowCount: df.Nrow()}

	switch spec.Kind {
	case model.KindNullCount:
		result.Aggregate = NullCounts(df)
		return result, nil

	case model.KindFrequency:
		counts := ValueCounts(df.Col(spec.Column))
		if len(counts) == 0 {
			return nil, fmt.Errorf("'%s': %w", spec.Column, ErrEmptyAggregate)
		}
		result.Aggregate = TopN(counts, spec.TopN)
		if spec.LeaderKey != "" || spec.UniqueKey != "" {
			result.Extras = leaderSummary(spec, result.Aggregate, len(counts))
		}
		return result, nil

	case model.KindGroupedSum:
		sums := GroupedSum(df, spec.Column, spec.Measure)
		if len(sums) == 0 {
			return nil, fmt.Errorf("'%s': %w", spec.Column, ErrEmptyAggregate)
		}
		if spec.TopN > 0 {
			sortDescending(sums)
			sums = TopN(sums, spec.TopN)
		}
		result.Aggregate = sums
		return result, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, spec.Kind)
}

// leaderSummary reports the most frequent value, its count and the distinct count
func leaderSummary(spec model.AnalysisSpec, counts model.Aggregate, unique int) map[string]interface{} {
	extras := make(map[string]interface{}, 3)
	if spec.LeaderKey != "" {
		extras[spec.LeaderKey] = counts[0].Label
		extras["count"] = int(counts[0].Value)
	}
	if spec.UniqueKey != "" {
		extras[spec.UniqueKey] = unique
	}
	return extras
}

// NullCounts counts missing cells per column, in column order
func NullCounts(df dataframe.DataFrame) model.Aggregate {
	names := df.Names()
	out := make(model.Aggregate, 0, len(names))
	for _, name := range names {
		missing := 0
		for _, na := range df.Col(name).IsNaN() {
			if na {
				missing++
			}
		}
		out = append(out, model.Bucket{Label: name, Value: float64(missing)})
	}
	return out
}

// ValueCounts counts each distinct non-missing value, highest count first.
// Equal counts keep the order in which values were first seen.
func ValueCounts(s series.Series) model.Aggregate {
	index := make(map[string]int)
	var out model.Aggregate

	for i := 0; i < s.Len(); i++ {
		e := s.Elem(i)
		if e.IsNA() {
			continue
		}
		label := labelOf(e)
		if pos, ok := index[label]; ok {
			out[pos].Value++
			continue
		}
		index[label] = len(out)
		out = append(out, model.Bucket{Label: label, Value: 1})
	}

	sortDescending(out)
	return out
}

// GroupedSum sums the non-missing measure per non-missing group value.
// Groups are ordered by group value: numerically for numeric columns,
// lexically otherwise.
func GroupedSum(df dataframe.DataFrame, groupBy, measure string) model.Aggregate {
	keys := df.Col(groupBy)
	values := df.Col(measure)
	numericKeys := keys.Type() == series.Int || keys.Type() == series.Float

	type group struct {
		bucket  model.Bucket
		sortKey float64
	}
	index := make(map[string]int)
	var groups []group

	for i := 0; i < keys.Len(); i++ {
		k := keys.Elem(i)
		if k.IsNA() {
			continue
		}
		label := labelOf(k)
		pos, ok := index[label]
		if !ok {
			pos = len(groups)
			index[label] = pos
			g := group{bucket: model.Bucket{Label: label}}
			if numericKeys {
				g.sortKey = k.Float()
			}
			groups = append(groups, g)
		}

		v := values.Elem(i)
		if v.IsNA() {
			continue
		}
		groups[pos].bucket.Value += v.Float()
	}

	sort.SliceStable(groups, func(i, j int) bool {
		if numericKeys {
			return groups[i].sortKey < groups[j].sortKey
		}
		return groups[i].bucket.Label < groups[j].bucket.Label
	})

	out := make(model.Aggregate, len(groups))
	for i, g := range groups {
		out[i] = g.bucket
	}
	return out
}

// TopN truncates an already-sorted aggregate; n <= 0 keeps everything
func TopN(agg model.Aggregate, n int) model.Aggregate {
	if n > 0 && len(agg) > n {
		return agg[:n]
	}
	return agg
}

func sortDescending(agg model.Aggregate) {
	sort.SliceStable(agg, func(i, j int) bool {
		return agg[i].Value > agg[j].Value
	})
}

// labelOf renders a cell as a JSON object key
func labelOf(e series.Element) string {
	switch e.Type() {
	case series.Int:
		if v, err := e.Int(); err == nil {
			return strconv.Itoa(v)
		}
	case series.Float:
		return strconv.FormatFloat(e.Float(), 'f', -1, 64)
	}
	return e.String()
}
