package models

type NationalityCount struct {
	Nationality string `json:"nationality"`
	Count       int64  `json:"count"`
}

// Stats is the dashboard summary served by GET /api/stats.
type Stats struct {
	TotalTourists         int64              `json:"total_tourists"`
	TotalDestinations     int64              `json:"total_destinations"`
	TotalVisits           int64              `json:"total_visits"`
	AvgRating             float64            `json:"avg_rating"`
	ReturnRate            float64            `json:"return_rate"`
	TouristsByNationality []NationalityCount `json:"tourists_by_nationality"`
}
