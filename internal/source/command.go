package source

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
	"time"

	"codeberg.org/mutker/statusfeed/internal/errors"
)

// Command runs an external program and returns its standard output.
type Command struct {
	Name    string
	Args    []string
	Timeout time.Duration
}

// NewCommand builds a Command with the given timeout.
func NewCommand(timeout time.Duration, name string, args ...string) Command {
	return Command{Name: name, Args: args, Timeout: timeout}
}

func (c Command) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// Fetch runs the command. A non-zero exit or a timeout is an error; the
// output of a failed run is discarded.
func (c Command) Fetch(ctx context.Context) (string, error) {
	errFactory := errors.New()

	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return "", errFactory.WithData(errors.ErrSourceTimeout, c.String())
		}
		data := c.String()
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			data += ": " + msg
		}
		return "", errFactory.Wrap(errors.ErrSourceFetch, err).WithData(data)
	}

	return stdout.String(), nil
}
