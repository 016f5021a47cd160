package page

// Element ids of the markup in web/index.html.
const (
	TouristsList     = "touristsList"
	DestinationsList = "destinationsList"

	AddTouristForm     = "addTouristForm"
	AddDestinationForm = "addDestinationForm"
	RecordVisitForm    = "recordVisitForm"

	AddTouristModal     = "addTouristModal"
	AddDestinationModal = "addDestinationModal"
	RecordVisitModal    = "recordVisitModal"

	TouristName        = "touristName"
	TouristNationality = "touristNationality"
	TouristAge         = "touristAge"

	DestinationName    = "destinationName"
	DestinationCity    = "destinationCity"
	DestinationCountry = "destinationCountry"
	DestinationPrice   = "destinationPrice"

	VisitTourist     = "visitTourist"
	VisitDestination = "visitDestination"
	VisitRating      = "visitRating"
)
