package explain

import (
	"context"
	"errors"
	"os/exec"
	"strings"
	"testing"
)

func TestFunc(t *testing.T) {
	var e Explainer = Func(func(_ context.Context, input, reduced string) (string, error) {
		return input + " -> " + reduced, nil
	})
	got, err := e.Explain(context.Background(), "(#x.x) 5", "5")
	if err != nil || got != "(#x.x) 5 -> 5" {
		t.Errorf("got %q, %v", got, err)
	}
}

func TestPrompt(t *testing.T) {
	p := Prompt("(#x.x) 5", "5")
	if !strings.Contains(p, "Explain how we got to 5 from (#x.x) 5") {
		t.Errorf("unexpected prompt %q", p)
	}
}

func TestParseCommand(t *testing.T) {
	if ParseCommand("   ") != nil {
		t.Errorf("blank command line should give nil")
	}
	c := ParseCommand("llm -m  flash")
	if c.Name != "llm" || strings.Join(c.Args, ",") != "-m,flash" {
		t.Errorf("got %+v", c)
	}
}

func TestCommandEchoesPrompt(t *testing.T) {
	if _, err := exec.LookPath("cat"); err != nil {
		t.Skip("could not find 'cat' executable in PATH")
	}
	c := &Command{Name: "cat"}
	got, err := c.Explain(context.Background(), "a", "b")
	if err != nil {
		t.Fatalf("Explain: %v", err)
	}
	if got != Prompt("a", "b") {
		t.Errorf("got %q", got)
	}
}

func TestCommandFailure(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("could not find 'sh' executable in PATH")
	}
	c := &Command{Name: "sh", Args: []string{"-c", "echo quota exceeded >&2; exit 3"}}
	_, err := c.Explain(context.Background(), "a", "b")
	if err == nil {
		t.Fatalf("expected an error")
	}
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) || exitErr.ExitCode() != 3 {
		t.Errorf("got %v, want exit status 3", err)
	}
	if !strings.Contains(err.Error(), "quota exceeded") {
		t.Errorf("stderr missing from %q", err)
	}
}

func TestNilCommand(t *testing.T) {
	var c *Command
	if _, err := c.Explain(context.Background(), "a", "b"); !errors.Is(err, ErrNoCommand) {
		t.Errorf("got %v, want ErrNoCommand", err)
	}
}
