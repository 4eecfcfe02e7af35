package dto

// Envelope is the uniform body of every API response.
// @Description Uniform response envelope
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
	Error   *string     `json:"error"`
}

// OK wraps data in a successful envelope.
func OK(data interface{}) Envelope {
	return Envelope{Success: true, Data: data}
}

// Fail builds a failed envelope carrying msg.
func Fail(msg string) Envelope {
	return Envelope{Success: false, Error: &msg}
}
