package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go-sales-dashboard/internal/logging"
	"go-sales-dashboard/internal/metrics"

	"github.com/go-gota/gota/dataframe"
)

// Dataset owns the in-memory tables: an immutable original and a working
// snapshot that can be replaced. gota tables are values that are never
// mutated in place, so a snapshot handed to a reader stays consistent
// while a writer swaps in a new one.
type Dataset struct {
	mu       sync.RWMutex
	source   string
	original dataframe.DataFrame
	working  dataframe.DataFrame
}

// New wraps an already-parsed table
func New(source string, df dataframe.DataFrame) *Dataset {
	d := &Dataset{source: source, original: df, working: df}
	metrics.SetDatasetRows(df.Nrow(), df.Nrow())
	return d
}

// Load reads the CSV at pathOrURL into a new Dataset
func Load(ctx context.Context, pathOrURL string) (*Dataset, error) {
	start := time.Now()
	df, err := ReadCSV(ctx, pathOrURL)
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset %s: %w", pathOrURL, err)
	}

	logging.Info().
		Str("source", pathOrURL).
		Int("rows", df.Nrow()).
		Int("columns", df.Ncol()).
		Dur("took", time.Since(start)).
		Msg("📄 dataset loaded")
	return New(pathOrURL, df), nil
}

// Source is where the dataset was loaded from
func (d *Dataset) Source() string {
	return d.source
}

// Working returns the current working snapshot
func (d *Dataset) Working() dataframe.DataFrame {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.working
}

// Original returns the table as loaded
func (d *Dataset) Original() dataframe.DataFrame {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.original
}

// FilterMissing replaces the working table with its rows that have no
// missing value and returns the new snapshot. Writers are serialised, so
// concurrent calls converge on the same table.
func (d *Dataset) FilterMissing() (dataframe.DataFrame, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	before := d.working.Nrow()
	filtered, err := DropMissing(d.working)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("failed to drop missing rows: %w", err)
	}
	d.working = filtered
	metrics.SetDatasetRows(d.original.Nrow(), filtered.Nrow())

	logging.Info().
		Int("before", before).
		Int("after", filtered.Nrow()).
		Msg("working table filtered")
	return filtered, nil
}

// Reset restores the working table from the original
func (d *Dataset) Reset() dataframe.DataFrame {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.working = d.original
	metrics.SetDatasetRows(d.original.Nrow(), d.original.Nrow())
	logging.Info().Int("rows", d.working.Nrow()).Msg("working table reset")
	return d.working
}
