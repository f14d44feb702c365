package messages

// MaxMessageLength is the longest message body accepted, in runes
const MaxMessageLength = 5000

// Message is a direct message between two users
type Message struct {
	ID      string `json:"id"`
	To      string `json:"to"`
	From    string `json:"from"`
	Message string `json:"message"`
	Time    string `json:"time"`
}

// SendRequest is a message submitted by the authenticated sender
type SendRequest struct {
	To      string `json:"to" validate:"required"`
	From    string `json:"-"`
	Message string `json:"message" validate:"required"`
	Time    string `json:"time,omitempty"`
}
