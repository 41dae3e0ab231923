package utils

// DefaultCurrency is used when no ISO 4217 code is given.
const DefaultCurrency = "USD"

const (
	DashboardSourceMock     = "mock"
	DashboardSourcePostgres = "postgres"
)

// ChartColors defines a palette of distinct colors for chart visualization
// These colors are designed to be easily distinguishable from each other
var ChartColors = []string{
	"#2563eb", // Primary Blue
	"#16a34a", // Success Green
	"#d97706", // Warning Amber
	"#dc2626", // Danger Red
	"#7c3aed", // Purple
	"#0d9488", // Teal
	"#ffa366", // Light Orange
	"#80b3ff", // Light Blue
	"#a3d977", // Light Green
	"#808080", // Medium Gray
}

// GetChartColor returns a color from the chart color palette
// If the index exceeds the palette size, it cycles back to the beginning
func GetChartColor(index int) string {
	return ChartColors[index%len(ChartColors)]
}
