package dto

// DashboardStats feeds the counters on the dashboard home.
type DashboardStats struct {
	BlogCount          int64 `json:"blogCount" example:"12"`
	ProjectCount       int64 `json:"projectCount" example:"5"`
	MessageCount       int64 `json:"messageCount" example:"30"`
	UnreadMessageCount int64 `json:"unreadMessageCount" example:"3"`
}
