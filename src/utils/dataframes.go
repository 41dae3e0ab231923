package utils

//nolint:depguard
import (
	"fmt"
	"io"
	"sort"
	"strings"

	"fingenius/src/models"

	"github.com/go-gota/gota/dataframe"
)

// SectorTotal is the summed value and allocation of one sector.
type SectorTotal struct {
	Sector     string
	Value      float64
	Allocation float64
}

// HoldingsFrame loads holdings into a DataFrame, one column per tagged field.
func HoldingsFrame(holdings []models.Holding) (dataframe.DataFrame, error) {
	df := dataframe.LoadStructs(holdings)
	if df.Err != nil {
		return df, fmt.Errorf("failed to load holdings: %w", df.Err)
	}
	return df, nil
}

// WriteHoldingsCSV writes holdings as CSV with a header row.
func WriteHoldingsCSV(w io.Writer, holdings []models.Holding) error {
	if len(holdings) == 0 {
		_, err := io.WriteString(w, "id,symbol,name,quantity,current_price,current_value,change_percent,allocation,sector\n")
		return err
	}
	df, err := HoldingsFrame(holdings)
	if err != nil {
		return err
	}
	return df.WriteCSV(w)
}

// SectorTotals groups holdings by sector, sorted by value, largest first.
func SectorTotals(holdings []models.Holding) ([]SectorTotal, error) {
	if len(holdings) == 0 {
		return nil, nil
	}
	df, err := HoldingsFrame(holdings)
	if err != nil {
		return nil, err
	}

	grouped := df.GroupBy("sector").Aggregation(
		[]dataframe.AggregationType{dataframe.Aggregation_SUM, dataframe.Aggregation_SUM},
		[]string{"current_value", "allocation"},
	)
	if grouped.Err != nil {
		return nil, fmt.Errorf("failed to group holdings: %w", grouped.Err)
	}

	valueCol, err := aggregatedColumn(grouped, "current_value")
	if err != nil {
		return nil, err
	}
	allocationCol, err := aggregatedColumn(grouped, "allocation")
	if err != nil {
		return nil, err
	}

	sectors := grouped.Col("sector").Records()
	values := grouped.Col(valueCol).Float()
	allocations := grouped.Col(allocationCol).Float()

	totals := make([]SectorTotal, 0, len(sectors))
	for i, sector := range sectors {
		totals = append(totals, SectorTotal{Sector: sector, Value: values[i], Allocation: allocations[i]})
	}
	sort.SliceStable(totals, func(i, j int) bool {
		if totals[i].Value == totals[j].Value {
			return totals[i].Sector < totals[j].Sector
		}
		return totals[i].Value > totals[j].Value
	})
	return totals, nil
}

// aggregatedColumn finds the column gota named after an aggregated column.
func aggregatedColumn(df dataframe.DataFrame, source string) (string, error) {
	for _, name := range df.Names() {
		if strings.HasPrefix(name, source+"_") {
			return name, nil
		}
	}
	return "", fmt.Errorf("aggregated column for %s not found", source)
}
