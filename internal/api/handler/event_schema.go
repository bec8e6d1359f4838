package handler

// Event payloads carry datetimes as strings so the API keeps accepting the
// lenient ISO shapes the frontend sends (see parseDatetime).

type createEventRequest struct {
	Title       string `json:"title"       validate:"required"`
	CalendarID  int64  `json:"calendar_id" validate:"required"`
	StartDate   string `json:"start_date"  validate:"required"`
	EndDate     string `json:"end_date"    validate:"required"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

type updateEventRequest struct {
	Title       *string `json:"title"`
	CalendarID  *int64  `json:"calendar_id"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
	Description *string `json:"description"`
	Color       *string `json:"color"`
}
