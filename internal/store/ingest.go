package store

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"go-sales-dashboard/pkg/utils"

	"github.com/go-gota/gota/dataframe"
)

// MissingValues are the cell spellings treated as missing
var MissingValues = []string{"", "NA", "N/A", "NaN", "nan", "null", "NULL", "None", "<nil>"}

// ErrEmptyCSV is returned when the source has no header row
var ErrEmptyCSV = errors.New("csv has no header row")

// ReadCSV opens a local file or fetches an http(s) URL and parses it into a table
func ReadCSV(ctx context.Context, pathOrURL string) (dataframe.DataFrame, error) {
	if utils.IsRemote(pathOrURL) {
		body, err := fetch(ctx, http.DefaultClient, pathOrURL, DefaultFetchRetry)
		if err != nil {
			return dataframe.DataFrame{}, err
		}
		return ParseCSV(bytes.NewReader(body))
	}

	file, err := os.Open(pathOrURL)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()
	return ParseCSV(file)
}

// ParseCSV reads a header row plus records and infers column types.
// Short rows are padded with missing cells; long rows are an error.
func ParseCSV(r io.Reader) (dataframe.DataFrame, error) {
	csvReader := csv.NewReader(r)
	csvReader.LazyQuotes = true
	csvReader.FieldsPerRecord = -1

	headers, err := csvReader.Read()
	if err == io.EOF {
		return dataframe.DataFrame{}, ErrEmptyCSV
	} else if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("failed to read CSV header: %w", err)
	}
	for i, h := range headers {
		headers[i] = utils.CleanHeader(h)
	}

	records := [][]string{headers}
	line := 1
	for {
		record, err := csvReader.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return dataframe.DataFrame{}, fmt.Errorf("CSV read error: %w", err)
		}
		line++
		if len(record) > len(headers) {
			return dataframe.DataFrame{}, fmt.Errorf("CSV line %d: expected %d fields, saw %d", line, len(headers), len(record))
		}
		for len(record) < len(headers) {
			record = append(record, "")
		}
		records = append(records, record)
	}

	df := dataframe.LoadRecords(records,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
		dataframe.NaNValues(MissingValues),
	)
	if df.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("failed to build table: %w", df.Err)
	}
	return df, nil
}
