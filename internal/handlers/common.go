package handlers

// ErrorEnvelope is the uniform failure body: {success, status, message}.
type ErrorEnvelope struct {
	Success bool   `json:"success" example:"false"`
	Status  int    `json:"status" example:"404"`
	Message string `json:"message" example:"something went wrong"`
}

// Message for every semantic 422 on the quiz endpoint, matching what the
// game client expects.
const unprocessableMessage = "The json that was sent did not include a proper field. Please refer to documentation."
