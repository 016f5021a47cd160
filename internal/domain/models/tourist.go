package models

import "tourism/internal/jsnum"

// Tourist is one row of the tourists table as served by GET /api/tourists.
type Tourist struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Nationality string `json:"nationality"`
	Age         *int   `json:"age"`
}

// TouristPayload is the body of POST /api/tourists.
type TouristPayload struct {
	Name        string    `json:"name"`
	Nationality string    `json:"nationality"`
	Age         jsnum.Int `json:"age"`
}
