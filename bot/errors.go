package bot

import "github.com/pkg/errors"

// ErrBadHandle is returned when a Bot is used after Destroy. A destroyed
// handle is a host-channel concern the core itself never observes
// internally; here it surfaces as a plain error from the affected method.
var ErrBadHandle = errors.New("bot: use of a destroyed handle")

func badHandle() error {
	return errors.WithStack(ErrBadHandle)
}
