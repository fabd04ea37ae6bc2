// Package clipboard adapts the system clipboard to platform.Clipboard.
package clipboard

import (
	"context"
	"errors"

	"github.com/atotto/clipboard"
)

var ErrUnsupported = errors.New("no clipboard utility found")

type System struct{}

func NewSystem() *System {
	return &System{}
}

func (s *System) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	return clipboard.WriteAll(text)
}
