package editor

import (
	"fmt"
	"os"
	"os/exec"
)

// Open launches the user's editor on path and waits for it to exit.
// VISUAL wins over EDITOR, falling back to vi.
func Open(path string) error {
	name := os.Getenv("VISUAL")
	if name == "" {
		name = os.Getenv("EDITOR")
	}
	if name == "" {
		name = "vi"
	}

	cmd := exec.Command(name, path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("editor %q: %w", name, err)
	}
	return nil
}
