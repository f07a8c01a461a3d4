package weights

// WeightRecord is one day's weigh-in. One record per calendar day —
// re-saving a date replaces the earlier entry.
type WeightRecord struct {
	Date      string  `json:"date"`   // YYYY-MM-DD
	Weight    float64 `json:"weight"` // kg
	IsFasting bool    `json:"isFasting"`
	Note      string  `json:"note,omitempty"`
	Timestamp int64   `json:"timestamp"` // capture instant, unix ms
}

// AddRequest is the POST /v1/weights body.
type AddRequest struct {
	Date      string  `json:"date"`
	Weight    float64 `json:"weight"`
	IsFasting bool    `json:"isFasting"`
	Note      string  `json:"note,omitempty"`
}

// RecordsResponse wraps a list of records.
type RecordsResponse struct {
	Records []WeightRecord `json:"records"`
}
