package dto

type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

// FormErrorResponse carries inline form errors the way the templates
// expect them: a flat messages_error list plus per-field detail.
type FormErrorResponse struct {
	Error         bool                `json:"error"`
	MessagesError []string            `json:"messages_error"`
	Fields        map[string][]string `json:"fields,omitempty"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
}
