package message

import "time"

// EmailMessage es el contrato del mensaje que viaja por la cola de correos
// (topic email-message-queue). Se serializa como JSON.
type EmailMessage struct {
	To               string    `json:"to"`
	From             string    `json:"from"`
	Subject          string    `json:"subject"`
	PlainTextContent string    `json:"plainTextContent"`
	HtmlContent      string    `json:"htmlContent"`
	SentAt           time.Time `json:"sentAt"`
}
