// Package clipboard places the finished prompt on the system clipboard.
package clipboard

import (
	"errors"

	systemclipboard "github.com/atotto/clipboard"
)

// ErrUnavailable reports a platform without a usable clipboard utility
// (for example Linux without xclip, xsel or wl-copy).
var ErrUnavailable = errors.New("system clipboard is unavailable")

// Copier copies textual data to the system clipboard.
type Copier interface {
	Copy(text string) error
}

// Service implements Copier using github.com/atotto/clipboard.
type Service struct {
	write       func(string) error
	unsupported func() bool
}

// NewService constructs a Copier backed by the system clipboard.
func NewService() *Service {
	return &Service{
		write:       systemclipboard.WriteAll,
		unsupported: func() bool { return systemclipboard.Unsupported },
	}
}

// Copy writes text to the system clipboard.
func (service *Service) Copy(text string) error {
	if service.unsupported() {
		return ErrUnavailable
	}
	return service.write(text)
}

var _ Copier = (*Service)(nil)
