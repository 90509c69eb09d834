package cashflow

import (
	"encoding/csv"
	"os"
	"strconv"

	"battery-case/internal/model"

	"github.com/shopspring/decimal"
)

// WriteCSV writes one row per period with the running total alongside.
// Amounts are rounded to cents.
func WriteCSV(path string, series model.CashFlowSeries) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"period",
		"amount",
		"cumulative",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	cum := Cumulative(series)
	for i, cf := range series {
		row := []string{
			strconv.Itoa(cf.Period),
			fmtMoney(cf.Amount),
			fmtMoney(cum[i]),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func fmtMoney(x float64) string {
	return decimal.NewFromFloat(x).StringFixed(2)
}
