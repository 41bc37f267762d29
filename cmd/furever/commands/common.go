// Package commands wires the furever subcommands. Each command file owns one
// page of the application; shared bootstrap lives in Global.
package commands

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/furevercare/furever/internal/catalog"
	"github.com/furevercare/furever/internal/config"
	"github.com/furevercare/furever/internal/state"
	"github.com/furevercare/furever/internal/storage"
	"github.com/furevercare/furever/internal/ui"
)

// CLI is the root command definition and the global flags.
type CLI struct {
	ProfileDir   string           `help:"Profile directory holding state, config and feedback" type:"path"`
	DataDir      string           `help:"Directory with catalog YAML files (defaults to the built-in seed data)" type:"path"`
	StateBackend string           `help:"State persistence backend (file, sqlite or memory)"`
	Verbose      bool             `short:"v" help:"Enable verbose logging"`
	Version      kong.VersionFlag `name:"version" help:"Show version and exit"`

	Onboard  OnboardCmd  `cmd:"" help:"Pick your name and role (the welcome quiz)"`
	Status   StatusCmd   `cmd:"" help:"Show who you are, your pet and your settings"`
	Reset    ResetCmd    `cmd:"" help:"Forget your identity and pet profile (retake the quiz)"`
	Shop     ShopCmd     `cmd:"" help:"Browse the product showcase"`
	Adopt    AdoptCmd    `cmd:"" help:"Browse pets available for adoption"`
	Vets     VetsCmd     `cmd:"" help:"Browse the veterinarian directory"`
	Fav      FavCmd      `cmd:"" help:"Manage favorites"`
	Pet      PetCmd      `cmd:"" help:"Manage your pet profile"`
	Prefs    PrefsCmd    `cmd:"" help:"Adjust theme, font size and ambience"`
	Tips     TipsCmd     `cmd:"" help:"Read care tips"`
	Feedback FeedbackCmd `cmd:"" help:"Leave or read feedback"`
	About    AboutCmd    `cmd:"" help:"About FurEver Care"`
	Contact  ContactCmd  `cmd:"" help:"How to reach us"`
	Kiosk    KioskCmd    `cmd:"" help:"Continuously render listings, reloading when catalog files change"`
}

// AfterApply runs after flag parsing; set up logging once.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// Global carries the shared application state into every command.
type Global struct {
	Cfg        config.Config
	Store      *state.Store
	Catalog    *catalog.Catalog
	Renderer   *ui.Renderer
	ProfileDir string

	medium storage.Medium
}

// NewGlobal performs the application bootstrap: resolve the profile
// directory, load configuration, open the state medium, load the catalog and
// run the visit-counter gate exactly once.
func NewGlobal(cli *CLI) (*Global, error) {
	profileDir := cli.ProfileDir
	if profileDir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("resolve profile directory: %w", err)
		}
		profileDir = filepath.Join(base, "furever")
	}
	if err := os.MkdirAll(profileDir, 0o755); err != nil {
		return nil, fmt.Errorf("create profile directory: %w", err)
	}

	cfg := config.Load(filepath.Join(profileDir, "furever.yaml"))
	if cli.DataDir != "" {
		cfg.DataDir = cli.DataDir
	}
	if cli.StateBackend != "" {
		cfg.StateBackend = cli.StateBackend
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	medium := openMedium(cfg.StateBackend, profileDir)
	store := state.Open(medium)
	seedPreferences(store, medium, cfg)

	// The visit-counter gate: one increment per fresh activation, and only
	// while onboarding has not completed.
	store.StartSession()

	cat, err := catalog.Load(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	renderer := ui.New(os.Stdout, store.Preferences())
	renderer.Bind(store)

	return &Global{
		Cfg:        cfg,
		Store:      store,
		Catalog:    cat,
		Renderer:   renderer,
		ProfileDir: profileDir,
		medium:     medium,
	}, nil
}

// openMedium opens the configured backend, degrading to the in-memory medium
// when the durable one is unavailable: the session still works, the state
// just will not survive a restart.
func openMedium(backend, profileDir string) storage.Medium {
	switch backend {
	case config.BackendSQLite:
		m, err := storage.OpenSQLite(filepath.Join(profileDir, "state.db"))
		if err != nil {
			slog.Warn("State database unavailable, state will not persist", "error", err)
			return storage.NewMemory()
		}
		return m
	case config.BackendMemory:
		return storage.NewMemory()
	default:
		m, err := storage.OpenFile(filepath.Join(profileDir, "state.json"))
		if err != nil {
			slog.Warn("State file unavailable, state will not persist", "error", err)
			return storage.NewMemory()
		}
		return m
	}
}

// seedPreferences applies configured display defaults for slots the visitor
// has never set. Stored preferences always win over configuration; ambience
// is session-local and comes from configuration every start.
func seedPreferences(store *state.Store, medium storage.Medium, cfg config.Config) {
	if _, ok := medium.Get("furEver_darkMode"); !ok && cfg.Dark() {
		store.SetTheme(true)
	}
	if _, ok := medium.Get("furEver_fontSize"); !ok && cfg.FontSize != state.DefaultFontSize {
		store.SetFontSize(cfg.FontSize)
	}
	store.SetAmbience(state.ParseAmbience(cfg.Ambience))
}

// Close releases the state medium.
func (g *Global) Close() {
	if err := g.medium.Close(); err != nil {
		slog.Debug("Closing state medium failed", "error", err)
	}
}

// FeedbackPath returns the feedback journal location inside the profile.
func (g *Global) FeedbackPath() string {
	return filepath.Join(g.ProfileDir, "feedback.db")
}

// prompt reads one trimmed line from stdin after printing label.
func prompt(label string) (string, error) {
	fmt.Print(label)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
