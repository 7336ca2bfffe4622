package roster

// Summary aggregates the unrounded amounts of every record in the roster.
type Summary struct {
	Workers         int     `json:"workers"`
	TotalGross      float64 `json:"totalGross"`
	TotalINSS       float64 `json:"totalInss"`
	TotalIncomeTax  float64 `json:"totalIncomeTax"`
	TotalDeductions float64 `json:"totalDeductions"`
	TotalNet        float64 `json:"totalNet"`
}
