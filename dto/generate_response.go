package dto

type GenerateResponseRequest struct {
	Subject  string `json:"subject"`
	Body     string `json:"body"`
	Category string `json:"category"`
}

type GenerateResponseResponse struct {
	ResponseText string `json:"response_text"`
}
