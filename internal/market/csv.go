package market

import (
	"encoding/csv"
	"os"
	"strconv"
)

// WritePnLCSV writes one row per settled order plus the column header.
func WritePnLCSV(path string, summary PnLSummary) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"order_id",
		"date",
		"hour",
		"side",
		"quantity",
		"bid_price",
		"day_ahead_price",
		"real_time_price",
		"filled",
		"pnl",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, d := range summary.Details {
		row := []string{
			d.OrderID,
			d.Date,
			strconv.Itoa(d.Hour),
			string(d.Side),
			fmtFloat(d.Quantity),
			fmtFloat(d.BidPrice),
			fmtFloat(d.DayAheadPrice),
			fmtFloat(d.RealTimePrice),
			strconv.FormatBool(d.Filled),
			fmtFloat(d.PnL),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 2, 64)
}
