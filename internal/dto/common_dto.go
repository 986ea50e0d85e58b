package dto

type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

type HealthResponse struct {
	Status      string `json:"status"`
	Timestamp   string `json:"timestamp"`
	DB          string `json:"db"`
	SchemaReady bool   `json:"schema_ready"`
}

type UnreadCountResponse struct {
	UnreadCount int64 `json:"unread_count"`
}
