package store

import (
	"fmt"

	"go-sales-dashboard/internal/model"
	"go-sales-dashboard/pkg/utils"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// PreviewRows is the number of rows returned by data previews
const PreviewRows = 10

// dtypeNames keeps the dtype labels the dashboard frontend already knows
var dtypeNames = map[series.Type]string{
	series.String: "object",
	series.Int:    "int64",
	series.Float:  "float64",
	series.Bool:   "bool",
}

// HasColumn reports whether df has a column called name
func HasColumn(df dataframe.DataFrame, name string) bool {
	for _, n := range df.Names() {
		if n == name {
			return true
		}
	}
	return false
}

// IsNumeric reports whether a column holds ints or floats
func IsNumeric(df dataframe.DataFrame, name string) bool {
	t := df.Col(name).Type()
	return t == series.Int || t == series.Float
}

// Preview returns the first n rows as records, missing cells as nil
func Preview(df dataframe.DataFrame, n int) []model.GenericRecord {
	if n > df.Nrow() {
		n = df.Nrow()
	}
	names := df.Names()
	cols := make([]series.Series, len(names))
	for j, name := range names {
		cols[j] = df.Col(name)
	}

	rows := make([]model.GenericRecord, 0, n)
	for i := 0; i < n; i++ {
		rec := make(model.GenericRecord, len(names))
		for j, name := range names {
			rec[name] = utils.PlainValue(cols[j].Elem(i).Val())
		}
		rows = append(rows, rec)
	}
	return rows
}

// PreviewOf bundles the head of df with its row count
func PreviewOf(df dataframe.DataFrame) model.DataPreview {
	return model.DataPreview{Data: Preview(df, PreviewRows), TotalRows: df.Nrow()}
}

// Info describes the columns of df
func Info(df dataframe.DataFrame) model.DatasetInfo {
	names := df.Names()
	dtypes := make(map[string]string, len(names))
	for _, name := range names {
		t := df.Col(name).Type()
		if label, ok := dtypeNames[t]; ok {
			dtypes[name] = label
		} else {
			dtypes[name] = string(t)
		}
	}
	return model.DatasetInfo{
		Columns:      names,
		Dtypes:       dtypes,
		TotalRows:    df.Nrow(),
		TotalColumns: df.Ncol(),
	}
}

// DropMissing keeps only rows with no missing cell in any column
func DropMissing(df dataframe.DataFrame) (dataframe.DataFrame, error) {
	nrow := df.Nrow()
	drop := make([]bool, nrow)
	for _, name := range df.Names() {
		for i, na := range df.Col(name).IsNaN() {
			if na {
				drop[i] = true
			}
		}
	}

	keep := make([]int, 0, nrow)
	for i, d := range drop {
		if !d {
			keep = append(keep, i)
		}
	}

	switch len(keep) {
	case nrow:
		return df, nil
	case 0:
		return emptyLike(df), nil
	}

	out := df.Subset(keep)
	if out.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("failed to subset rows: %w", out.Err)
	}
	return out, nil
}

// emptyLike builds a zero-row table with the columns and types of df
func emptyLike(df dataframe.DataFrame) dataframe.DataFrame {
	names := df.Names()
	cols := make([]series.Series, len(names))
	for i, name := range names {
		cols[i] = series.New([]string{}, df.Col(name).Type(), name)
	}
	return dataframe.New(cols...)
}
