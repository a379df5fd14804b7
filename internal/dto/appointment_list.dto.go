package dto

type AppointmentListDTO struct {
	ID            string  `json:"id"`
	Date          string  `json:"date"`
	TimeSlot      string  `json:"time_slot"`
	Status        string  `json:"status"`
	ClientName    string  `json:"client_name"`
	ClientPhone   string  `json:"client_phone"`
	ServiceIDs    []uint  `json:"service_ids"`
	TotalPrice    float64 `json:"total_price"`
	TotalDuration int     `json:"total_duration"`
	Notes         string  `json:"notes"`
}
