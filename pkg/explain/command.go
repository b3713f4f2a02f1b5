package explain

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

var ErrNoCommand = errors.New("explain: no command configured")

// Command runs an external program, writes the prompt to its stdin and
// returns its trimmed stdout as the explanation.
type Command struct {
	Name string
	Args []string
	Env  []string // appended to the inherited environment when set
}

// ParseCommand splits a command line on whitespace.
func ParseCommand(line string) *Command {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	return &Command{Name: fields[0], Args: fields[1:]}
}

func (c *Command) Explain(ctx context.Context, input, reduced string) (string, error) {
	if c == nil || c.Name == "" {
		return "", ErrNoCommand
	}

	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	if len(c.Env) > 0 {
		cmd.Env = append(cmd.Environ(), c.Env...)
	}
	cmd.Stdin = strings.NewReader(Prompt(input, reduced))
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("explain: %s failed: %w: %s", c.Name, err, msg)
		}
		return "", fmt.Errorf("explain: %s failed: %w", c.Name, err)
	}
	return strings.TrimSpace(stdout.String()), nil
}
