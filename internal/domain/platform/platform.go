// Package platform declares the host capabilities the receive screen needs.
package platform

import "context"

//go:generate mockgen -destination=../../usecase/receive/mocks/platform.go -package=mocks . Clipboard,Notifier

// Clipboard writes text to the system clipboard.
type Clipboard interface {
	WriteText(ctx context.Context, text string) error
}

// Notifier shows a blocking confirmation to the user.
type Notifier interface {
	Notify(ctx context.Context, message string)
}
