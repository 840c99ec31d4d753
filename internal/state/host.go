package state

import (
	"errors"
	"os"
	"os/exec"

	"golang.org/x/term"

	"github.com/snipstash/snip/internal/config"
)

// hostCaps answers capability queries for the current host. Paste requires
// both a configured paste command and an interactive terminal.
type hostCaps struct {
	cfg *config.Config
}

func (c hostCaps) SupportsPaste() bool {
	return c.cfg.SupportsPaste() && term.IsTerminal(int(os.Stdout.Fd()))
}

// cmdPaster simulates a paste keystroke by running the configured host
// command.
type cmdPaster struct {
	cfg *config.Config
}

func (p *cmdPaster) Paste() error {
	if !p.cfg.SupportsPaste() {
		return errors.New("state: paste not supported by host")
	}
	return exec.Command(p.cfg.PasteCmd, p.cfg.PasteArgs...).Run()
}
