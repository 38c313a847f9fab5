package email

import "errors"

var (
	// ErrIncompleteConfig indicates missing SMTP settings or recipient.
	ErrIncompleteConfig = errors.New("email configuration incomplete")
)
