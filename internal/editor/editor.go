// Package editor launches the configured external editor on a snippet file.
package editor

import (
	"errors"
	"io"
	"os"
	"os/exec"
)

// Editor describes how to launch the external editor. Wait blocks until the
// editor exits; Silence discards its output.
type Editor struct {
	Command string
	Args    []string
	Wait    bool
	Silence bool
}

// Open starts the editor on path.
func (e *Editor) Open(path string) error {
	if e == nil || e.Command == "" {
		return errors.New("editor: no editor configured")
	}

	args := append(append([]string(nil), e.Args...), path)
	cmd := exec.Command(e.Command, args...)

	if e.Silence {
		cmd.Stdout = io.Discard
		cmd.Stderr = io.Discard
	} else if e.Wait {
		cmd.Stdin = os.Stdin
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
	}

	if err := cmd.Start(); err != nil {
		return err
	}

	if !e.Wait {
		// Detached launch; the editor outlives the command invocation.
		return cmd.Process.Release()
	}

	return cmd.Wait()
}
