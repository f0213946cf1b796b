package domain

// ShareLink maps a public hash to a user's brain. The schema exists for the
// share feature, which has no exposed API surface yet; nothing outside the
// store layer creates or reads these records.
type ShareLink struct {
	Record
	Hash   string `json:"hash"`
	UserID string `json:"user_id"`
}
