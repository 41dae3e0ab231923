package models

type Holding struct {
	ID            string  `db:"id" dataframe:"id"`
	Symbol        string  `db:"symbol" dataframe:"symbol"`
	Name          string  `db:"name" dataframe:"name"`
	Quantity      float64 `db:"quantity" dataframe:"quantity"`
	CurrentPrice  float64 `db:"current_price" dataframe:"current_price"`
	CurrentValue  float64 `db:"current_value" dataframe:"current_value"`
	ChangePercent float64 `db:"change_percent" dataframe:"change_percent"`
	Allocation    float64 `db:"allocation" dataframe:"allocation"`
	Sector        string  `db:"sector" dataframe:"sector"`
}
