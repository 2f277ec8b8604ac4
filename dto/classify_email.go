package dto

type ClassifyEmailRequest struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

type ClassifyEmailResponse struct {
	Category string `json:"category"`
}
