package model

import (
	"bytes"

	"github.com/goccy/go-json"
)

// Bucket is one labelled value of an aggregate
type Bucket struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Aggregate is an ordered label -> value mapping.
// It marshals to a JSON object whose keys keep bucket order.
type Aggregate []Bucket

// MarshalJSON encodes the aggregate as an ordered JSON object
func (a Aggregate) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, b := range a {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(b.Label)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(b.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Total sums all bucket values
func (a Aggregate) Total() float64 {
	var total float64
	for _, b := range a {
		total += b.Value
	}
	return total
}

// Labels returns bucket labels in order
func (a Aggregate) Labels() []string {
	labels := make([]string, len(a))
	for i, b := range a {
		labels[i] = b.Label
	}
	return labels
}

// AnalysisResult is the outcome of computing one analysis over the working table
type AnalysisResult struct {
	Spec      AnalysisSpec           `json:"-"`
	Aggregate Aggregate              `json:"aggregate"`
	Extras    map[string]interface{} `json:"extras,omitempty"` // endpoint-specific summary fields
	RowCount  int                    `json:"row_count"`        // rows of the table it was computed on
}

// ChartSpec describes a figure independent of how it is rendered
type ChartSpec struct {
	Kind   ChartKind `json:"kind"`
	Title  string    `json:"title"`
	XLabel string    `json:"x_label,omitempty"`
	YLabel string    `json:"y_label,omitempty"`
	Color  string    `json:"color,omitempty"`
	Data   Aggregate `json:"data"`
}

// Chart builds the figure description for a computed result
func (r *AnalysisResult) Chart() ChartSpec {
	return ChartSpec{
		Kind:   r.Spec.Chart,
		Title:  r.Spec.Title,
		XLabel: r.Spec.XLabel,
		YLabel: r.Spec.YLabel,
		Color:  r.Spec.Color,
		Data:   r.Aggregate,
	}
}

// DatasetInfo is the metadata summary of a table
type DatasetInfo struct {
	Columns      []string          `json:"columns"`
	Dtypes       map[string]string `json:"dtypes"`
	TotalRows    int               `json:"total_rows"`
	TotalColumns int               `json:"total_columns"`
}

// DataPreview is the head of a table plus its full row count
type DataPreview struct {
	Data      []GenericRecord `json:"data"`
	TotalRows int             `json:"total_rows"`
}
