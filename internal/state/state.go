package state

import (
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/snipstash/snip/internal/actions"
	"github.com/snipstash/snip/internal/config"
	"github.com/snipstash/snip/internal/constants"
	"github.com/snipstash/snip/internal/editor"
	"github.com/snipstash/snip/internal/handler"
	"github.com/snipstash/snip/internal/index"
)

// State wires the process-scoped singletons together: config, file handler,
// directory watcher, and the rescan coordinator. It is constructed once at
// startup and torn down through Shutdown.
type State struct {
	Config  *config.Config
	Handler *handler.FileHandler
	Editor  *editor.Editor
	Watcher *DirWatcher
	Index   *index.Coordinator
	Home    string
}

// NewState builds the engine around the configured snippet directory and
// kicks off the initial index build. The watcher feeds every directory
// change into the coordinator; the coordinator owns the published snapshot.
func NewState() (*State, error) {
	home, err := GetHomeDir()
	if err != nil {
		return nil, err
	}

	cfg, err := LoadConfig(home)
	if err != nil {
		return nil, err
	}

	if err := cfg.EnsureSnippetsDir(); err != nil {
		return nil, err
	}

	h := handler.NewFileHandler(cfg.SnippetsDir, cfg.Extension)
	ed := &editor.Editor{
		Command: cfg.Editor,
		Args:    cfg.EditorArgs,
		Wait:    cfg.EditorWait,
	}

	coordinator := index.NewCoordinator(cfg.SnippetsDir, cfg.Extension)

	watcher, err := NewDirWatcher(cfg.SnippetsDir, cfg.Extension)
	if err != nil {
		_ = coordinator.Close()
		return nil, fmt.Errorf("failed to create directory watcher: %w", err)
	}
	watcher.OnChange(coordinator.RequestRescan)
	watcher.OnClose(func() {
		_ = coordinator.Close()
	})
	watcher.Start()

	coordinator.RequestRescan()

	return &State{
		Config:  cfg,
		Handler: h,
		Editor:  ed,
		Watcher: watcher,
		Index:   coordinator,
		Home:    home,
	}, nil
}

// ActionBuilder assembles the per-result action builder around this state.
// Name and confirm come from the invoking surface (CLI prompt or TUI).
func (s *State) ActionBuilder(name actions.Namer, confirm actions.Confirmer) *actions.Builder {
	return &actions.Builder{
		Handler: s.Handler,
		Editor:  s.Editor,
		Caps:    hostCaps{cfg: s.Config},
		Paster:  &cmdPaster{cfg: s.Config},
		Name:    name,
		Confirm: confirm,
	}
}

// Shutdown stops the watcher, which in turn closes the coordinator.
func (s *State) Shutdown() error {
	if s == nil {
		return nil
	}
	return s.Watcher.Close()
}

func GetHomeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory. err: %s", err)
	}

	return home, nil
}

func LoadConfig(home string) (*config.Config, error) {
	viper.AddConfigPath(home + constants.ConfigDir)
	viper.SetConfigName(constants.ConfigFile)
	viper.SetConfigType(constants.ConfigFileType)
	viper.ReadInConfig()

	err := config.EnsureConfigExists(home)
	if err != nil {
		return nil, err
	}

	return config.Load(home)
}
