package models

import (
	"time"

	"tourism/internal/jsnum"
)

type Visit struct {
	ID            int64     `json:"id"`
	TouristID     int64     `json:"tourist_id"`
	DestinationID int64     `json:"destination_id"`
	VisitDate     time.Time `json:"visit_date"`
	Rating        *int      `json:"rating"`
}

// VisitPayload is the body of POST /api/visits. Ids parsed from an empty or
// non-numeric select value travel as null.
type VisitPayload struct {
	TouristID     jsnum.Int `json:"tourist_id"`
	DestinationID jsnum.Int `json:"destination_id"`
	Rating        jsnum.Int `json:"rating"`
}
