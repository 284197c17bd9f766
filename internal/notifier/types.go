package notifier

import (
	"errors"
	"time"
)

// DefaultChunkSize is the largest chunk sent in one message, in characters.
const DefaultChunkSize = 4000

// ErrDisabled is returned by Send when the credential pair is incomplete.
// It marks a disabled feature, not a failure.
var ErrDisabled = errors.New("notifier disabled")

// Config controls Telegram delivery.
type Config struct {
	Token  string
	ChatID string
	// APIURL is the Bot API base (default https://api.telegram.org).
	APIURL  string
	Timeout time.Duration
	// MessageDelay is the minimum gap between two chunks of one message.
	MessageDelay time.Duration
	// ChunkSize defaults to DefaultChunkSize.
	ChunkSize int
}

func (c Config) enabled() bool { return c.Token != "" && c.ChatID != "" }
