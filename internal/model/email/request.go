package email

// SendRequest is the POST /api/send-email payload.
type SendRequest struct {
	Recipient string  `json:"recipient" validate:"required,email"`
	Subject   string  `json:"subject" validate:"required"`
	Message   *string `json:"message,omitempty"`
	Summary   string  `json:"summary" validate:"required"`
}

// SendResponse confirms delivery to the relay.
type SendResponse struct {
	Message string `json:"message"`
}
