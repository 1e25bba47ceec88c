package provider

import (
	"errors"
	"fmt"
)

// Error classes. Match with errors.Is against an *Error.
var (
	ErrValidation       = errors.New("validation")
	ErrNotFound         = errors.New("not found")
	ErrRateLimited      = errors.New("rate limited")
	ErrNetwork          = errors.New("network")
	ErrChartUnavailable = errors.New("chart unavailable")
)

// User-facing messages.
const (
	MsgEmptyQuery     = "Please enter a stock symbol or cryptocurrency name"
	MsgStockNotFound  = "Stock symbol not found. Try: AAPL, TSLA, GOOGL, MSFT"
	MsgCryptoNotFound = "Cryptocurrency not found. Try: bitcoin, ethereum, dogecoin"
	MsgRateLimited    = "API rate limit reached. Please try again later or use your own API key"
	MsgStockNetwork   = "Failed to fetch stock data"
	MsgCryptoNetwork  = "Failed to fetch cryptocurrency data"
	MsgHistoryNetwork = "Failed to fetch historical data"
)

// Error carries a message safe to show to the user, its class, and the
// underlying cause if any.
type Error struct {
	Kind    error
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool { return target == e.Kind }

func NotFound(msg string) *Error { return &Error{Kind: ErrNotFound, Message: msg} }

func RateLimited(msg string, cause error) *Error {
	return &Error{Kind: ErrRateLimited, Message: msg, Err: cause}
}

func Network(msg string, cause error) *Error {
	return &Error{Kind: ErrNetwork, Message: msg, Err: cause}
}

func Validation(msg string) *Error { return &Error{Kind: ErrValidation, Message: msg} }

// UserMessage extracts the message to display for err. Errors that are not
// an *Error fall back to err.Error().
func UserMessage(err error) string {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Message
	}
	return err.Error()
}
