package dto

// HealthResponse reports the state of the service dependencies.
// Cache is "disabled" when Redis is not configured.
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Cache    string `json:"cache"`
}
