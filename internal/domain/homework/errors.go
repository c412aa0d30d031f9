package homework

import (
	"errors"
	"fmt"
)

// Shape violations raised by CheckResponse and ParseStatus. The poll loop only
// singles out ErrDateMissing (logged, never notified); the remaining sentinels
// all flow through the generic failure path.
var (
	ErrResponseNotObject = errors.New("response body is not a JSON object")
	ErrDateMissing       = errors.New("current_date key is missing from response")
	ErrHomeworksMissing  = errors.New("homeworks key is missing from response")
	ErrHomeworksNotList  = errors.New("homeworks value is not a list")
	ErrNameMissing       = errors.New("homework_name is missing or empty")
	ErrUnknownStatus     = errors.New("unexpected homework status")
)

// BotError wraps a Telegram delivery failure together with the text that could
// not be delivered. The loop logs it but never tries to report it back to the
// chat.
type BotError struct {
	Text string
	Err  error
}

func (e *BotError) Error() string {
	return fmt.Sprintf("failed to send message [%s]: %v", e.Text, e.Err)
}

func (e *BotError) Unwrap() error { return e.Err }
