package domain

// SMSMessage is the inbound event delivered by the message collaborator.
// Messages arrive asynchronously, unordered relative to wall-clock send time,
// and possibly duplicated.
type SMSMessage struct {
	Sender string `json:"sender"`
	Body   string `json:"body"`
}
