// Package email delivers notifications over SMTP using the user's own
// mail server credentials.
//
// Unlike a platform mailer with one provider account, every user carries a
// full SMTP configuration (host, port, credentials, TLS mode) plus a
// recipient address. Messages are sent with a plain-text body and a styled
// HTML alternative.
package email
