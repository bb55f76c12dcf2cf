package handler

type WelcomeResponse struct {
	Message string `json:"message"`
	Docs    string `json:"docs"`
	OpenAPI string `json:"openapi"`
}

type HealthResponse struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}
