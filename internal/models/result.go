package models

type StatusCode string

const (
	StatusLimited   StatusCode = "LIMITED"
	StatusBookNow   StatusCode = "BOOK_NOW"
	StatusFull      StatusCode = "FULL"
	StatusNA        StatusCode = "NA"
	StatusAvailable StatusCode = "AVAILABLE"
	StatusUnknown   StatusCode = "UNKNOWN"
)

// DepartureRow is one scheduled excursion slot as shown in the booking
// site's availability table for the queried date.
type DepartureRow struct {
	Name       string     `json:"name"`
	StatusText string     `json:"statusText"`
	Code       StatusCode `json:"code"`
	Available  bool       `json:"available"`
	SeatsLeft  *int       `json:"seatsLeft"`
}

type QueryResult struct {
	Ok             bool           `json:"ok"`
	Message        string         `json:"message"`
	Date           string         `json:"date"`
	AvailableCount int            `json:"availableCount"`
	Rows           []DepartureRow `json:"rows"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}
