package models

// ScheduleRequest represents the JSON body for an availability check
// swagger:model ScheduleRequest
type ScheduleRequest struct {
	// Date in YYYY-MM-DD
	// required: true
	// example: 2024-06-01
	Date string `json:"tanggal"`

	// Clock time in HH:MM
	// required: true
	// example: 10:00
	Time string `json:"jam"`
}

// ScheduleResponse represents the availability of a bucket
// swagger:model ScheduleResponse
type ScheduleResponse struct {
	// example: true
	Available bool `json:"available"`

	// example: Jadwal pagi-siang pada tanggal 2024-06-01 tersedia.
	Message string `json:"message"`
}

// TimeWindow is the clock range of a bucket on a given date
type TimeWindow struct {
	Date   string // YYYY-MM-DD
	Bucket string // pagi-siang or sore-malam
	Start  string // HH:MM
	End    string // HH:MM
}
