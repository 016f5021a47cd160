package models

import "time"

// DestinationRating covers destinations with at least one visit. AvgRating
// is nil when none of those visits carries a rating.
type DestinationRating struct {
	Name       string   `json:"name"`
	City       string   `json:"city"`
	Country    string   `json:"country"`
	AvgRating  *float64 `json:"avg_rating"`
	VisitCount int64    `json:"visit_count"`
}

type RecentActivity struct {
	TouristName     string    `json:"tourist_name"`
	DestinationName string    `json:"destination_name"`
	City            string    `json:"city"`
	Country         string    `json:"country"`
	Rating          *int      `json:"rating"`
	VisitDate       time.Time `json:"visit_date"`
}

// DestinationTotal is one visited destination with its visit count and the
// revenue summed from its price per visit.
type DestinationTotal struct {
	Name         string  `json:"name"`
	City         string  `json:"city"`
	Country      string  `json:"country"`
	VisitCount   int64   `json:"visit_count"`
	TotalRevenue float64 `json:"total_revenue"`
}

type MonthlyVisits struct {
	Month string `json:"month"`
	Count int64  `json:"count"`
}

type TouristActivity struct {
	ID                  int64  `json:"id"`
	Name                string `json:"name"`
	Nationality         string `json:"nationality"`
	Age                 *int   `json:"age"`
	VisitCount          int64  `json:"visit_count"`
	DestinationsVisited int64  `json:"destinations_visited"`
}

// DestinationSpread splits tourists with at least one visit by how many
// distinct destinations they went to.
type DestinationSpread struct {
	SingleDestination    int64   `json:"single_destination"`
	MultipleDestinations int64   `json:"multiple_destinations"`
	TotalTourists        int64   `json:"total_tourists"`
	Percentage           float64 `json:"percentage"`
}

// Dashboard is served by GET /api/dashboard. The summary fields are inlined.
type Dashboard struct {
	Stats
	DestinationRatings  []DestinationRating `json:"destination_ratings"`
	RecentActivities    []RecentActivity    `json:"recent_activities"`
	TopDestinations     []DestinationTotal  `json:"top_destinations"`
	PopularDestinations []DestinationTotal  `json:"popular_destinations"`
	SeasonalTrends      []MonthlyVisits     `json:"seasonal_trends"`
	DestinationSpread   DestinationSpread   `json:"destination_spread"`
	Tourists            []TouristActivity   `json:"tourists"`
}
