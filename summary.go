package carteira

// Bar is one point of a monthly series: a month label and its value.
type Bar struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Summary is the server-computed dashboard summary. Every field is optional:
// the backend is free to compute only part of it, and the engine substitutes
// a locally derived value per missing field, independently. A nil pointer
// means "absent"; decoding guarantees present values are finite.
type Summary struct {
	TotalInvested      *float64
	AverageMonthlyRate *float64
	FutureProfit       *float64
	FutureRedemption   *float64
	MonthlyProfit      *float64
	DailyProfit        *float64
	ActiveContracts    *int
	Bars               []Bar
}

// KPISet is the fully resolved set of dashboard metrics. Unlike Summary,
// every field is defined — for an empty contract list and no summary all
// monetary values are zero, never NaN.
type KPISet struct {
	TotalInvested      float64
	AverageMonthlyRate float64
	FutureProfit       float64
	FutureRedemption   float64
	MonthlyProfit      float64
	DailyProfit        float64
	ActiveContracts    int
}
