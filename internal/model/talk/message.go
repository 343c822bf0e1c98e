package talk

import "time"

// SystemSender is the name exports use when a line carries no sender.
const SystemSender = "システム"

// Message is one reconstructed utterance. Flags are fixed when the
// message is built and never updated afterwards.
type Message struct {
	Timestamp           time.Time `json:"timestamp"`
	Sender              string    `json:"sender"`
	Body                string    `json:"body"`
	IsSticker           bool      `json:"isSticker"`
	IsEmojiOnly         bool      `json:"isEmojiOnly"`
	IsCallEvent         bool      `json:"isCallEvent"`
	CallDurationSeconds int       `json:"callDurationSeconds,omitempty"`
}

// IsSystemSender reports whether name belongs to no participant.
func IsSystemSender(name string) bool {
	return name == "" || name == SystemSender
}
