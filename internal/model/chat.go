package model

// Sender identifies which side of the conversation produced a message.
type Sender string

const (
	SenderBot  Sender = "bot"
	SenderUser Sender = "user"
)

// Message is a single entry in a conversation transcript.
type Message struct {
	Content string `json:"content"`
	Sender  Sender `json:"sender"`
}
