package analytics

import (
	"errors"
	"fmt"

	"go-sales-dashboard/internal/model"
	"go-sales-dashboard/internal/store"

	"github.com/go-gota/gota/dataframe"
)

var (
	// ErrMissingColumn means the table lacks a column the analysis needs
	ErrMissingColumn = errors.New("column not found in dataset")
	// ErrNonNumericColumn means a summed column does not hold numbers
	ErrNonNumericColumn = errors.New("column is not numeric")
	// ErrEmptyAggregate means there is nothing to report or plot
	ErrEmptyAggregate = errors.New("no data to aggregate")
	// ErrUnknownKind means an AnalysisSpec names an unsupported kind
	ErrUnknownKind = errors.New("unknown analysis kind")
)

// ValidateColumns applies the analysis' column rules to a table
func ValidateColumns(df dataframe.DataFrame, rules model.ValidationRules) error {
	// Check required fields
	for _, field := range rules.RequiredFields {
		if !store.HasColumn(df, field) {
			return fmt.Errorf("'%s' %w", field, ErrMissingColumn)
		}
	}

	// Check numeric fields
	for _, field := range rules.NumericFields {
		if !store.IsNumeric(df, field) {
			return fmt.Errorf("'%s' %w (type %s)", field, ErrNonNumericColumn, df.Col(field).Type())
		}
	}
	return nil
}

// IsInputError reports whether err comes from the shape of the data rather
// than from a fault in the server
func IsInputError(err error) bool {
	return errors.Is(err, ErrMissingColumn) ||
		errors.Is(err, ErrNonNumericColumn) ||
		errors.Is(err, ErrEmptyAggregate)
}
