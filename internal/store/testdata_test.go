package store

import (
	"strings"
	"testing"

	"github.com/go-gota/gota/dataframe"
)

// salesCSV has 12 rows; rows 3, 7 and 11 carry a missing cell
const salesCSV = `Transaction_ID,Product,City,Total_Cost,Payment_Method,Season
1,Apple,Boston,10.5,Cash,Winter
2,Bread,Chicago,4.25,Credit Card,Spring
3,,Boston,3.0,Cash,Winter
4,Apple,Denver,12.0,Debit Card,Summer
5,Milk,Boston,2.5,Cash,Fall
6,Eggs,Chicago,6.0,Mobile Payment,Winter
7,Bread,Denver,,Cash,Spring
8,Apple,Boston,9.75,Credit Card,Summer
9,Milk,Chicago,2.5,Cash,Fall
10,Eggs,Denver,6.5,Debit Card,Winter
11,Apple,Boston,8.0,NA,Spring
12,Bread,Chicago,4.0,Cash,Summer
`

func mustParse(t *testing.T, data string) dataframe.DataFrame {
	t.Helper()
	df, err := ParseCSV(strings.NewReader(data))
	if err != nil {
		t.Fatalf("ParseCSV: %v", err)
	}
	return df
}
