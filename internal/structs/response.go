package structs

type Response struct {
	Status  Status `json:"status"`
	Payload any    `json:"payload,omitempty"`
}

type Status struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
