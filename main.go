package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/daonb/cove/present"
	"github.com/daonb/cove/teahost"
	"github.com/daonb/cove/tui"
)

const version = "0.1.0"

type runCmd struct {
	Demo        string `help:"Demo application to run (checklist, counter)"`
	Engine      string `help:"Event loop to use (native, bubbletea)"`
	NoAltScreen bool   `help:"Render on the primary screen"`
	NoMouse     bool   `help:"Leave mouse reporting off"`
}

type keysCmd struct{}

type aboutCmd struct {
	Width int `help:"Wrap width" default:"80"`
}

type versionCmd struct{}

var cli struct {
	Config  string     `help:"Extra config file, loaded after the user and project configs" type:"path"`
	Run     runCmd     `cmd:"" default:"1" help:"Run a demo application"`
	Keys    keysCmd    `cmd:"" help:"Show decoded key events until esc is pressed"`
	About   aboutCmd   `cmd:"" help:"Describe the runtime and the demo key bindings"`
	Version versionCmd `cmd:"" help:"Print version information"`
}

// initLogger points the default slog logger at a rotating log file. The
// terminal belongs to the running program, so nothing is logged to it.
func initLogger(cfg LoggingConfig) (io.Closer, error) {
	path, err := cfg.logFilePath()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory %s: %w", filepath.Dir(path), err)
	}

	logFile := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
		Compress:   cfg.Compress,
	}

	opts := &slog.HandlerOptions{
		Level: parseLevel(cfg.Level),
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(logFile, opts)))
	return logFile, nil
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func requireTerminal() bool {
	if !isatty.IsTerminal(os.Stdout.Fd()) || !isatty.IsTerminal(os.Stdin.Fd()) {
		fmt.Println("This program requires a terminal to run.")
		fmt.Println("Please run it in a terminal emulator.")
		return false
	}
	return true
}

func (r *runCmd) Run(config *Config) error {
	if !requireTerminal() {
		return nil
	}
	r.apply(config)
	if err := config.validate(); err != nil {
		return err
	}

	model, err := newDemoModel(config.Demo)
	if err != nil {
		return err
	}
	slog.Info("demo.start", "demo", config.Demo.Name, "engine", config.Runtime.Engine)

	if config.Runtime.Engine == "bubbletea" {
		return runBubbleTea(model, config.Runtime)
	}
	return runNative(model, config.Runtime)
}

// apply lets command line flags override the loaded configuration.
func (r *runCmd) apply(config *Config) {
	if r.Demo != "" {
		config.Demo.Name = r.Demo
	}
	if r.Engine != "" {
		config.Runtime.Engine = r.Engine
	}
	if r.NoAltScreen {
		config.Runtime.AltScreen = false
	}
	if r.NoMouse {
		config.Runtime.Mouse = false
	}
}

func programOptions(rc RuntimeConfig) []tui.ProgramOption {
	opts := []tui.ProgramOption{
		tui.WithPollInterval(rc.PollInterval),
		tui.WithTickInterval(rc.TickInterval),
		tui.WithLogger(slog.Default().With("component", "runtime")),
	}
	if !rc.AltScreen {
		opts = append(opts, tui.WithoutAltScreen())
	}
	if !rc.Mouse {
		opts = append(opts, tui.WithoutMouse())
	}
	return opts
}

func runNative(model tui.Model, rc RuntimeConfig) error {
	err := tui.NewProgram(model, programOptions(rc)...).Run()
	if errors.Is(err, tui.ErrInterrupted) {
		slog.Info("demo.interrupted")
		return nil
	}
	if err != nil {
		return fmt.Errorf("alas, there's been an error: %w", err)
	}
	return nil
}

func runBubbleTea(model tui.Model, rc RuntimeConfig) error {
	var opts []tea.ProgramOption
	if rc.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if rc.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	host := teahost.Wrap(model, teahost.WithForcedTick(rc.TickInterval))
	if _, err := tea.NewProgram(host, opts...).Run(); err != nil {
		return fmt.Errorf("alas, there's been an error: %w", err)
	}
	return nil
}

func (k *keysCmd) Run(config *Config) error {
	if !requireTerminal() {
		return nil
	}
	return runNative(NewKeyLogModel(10), config.Runtime)
}

func (a *aboutCmd) Run() error {
	style := "notty"
	if isatty.IsTerminal(os.Stdout.Fd()) {
		style = "dark"
	}
	out, err := RenderAbout(a.Width, style)
	if err != nil {
		return fmt.Errorf("failed to render about page: %w", err)
	}
	fmt.Print(out)
	return nil
}

func (v versionCmd) Run() error {
	fmt.Println(present.Bold("cove v" + version))
	return nil
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("cove"),
		kong.Description("A minimal Model-Update-View terminal runtime and its demos."),
		kong.UsageOnError(),
	)

	config, err := LoadConfig(cli.Config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Using defaults due to config load failure: %v\n", err)
		defaults := defaultConfig()
		config = &defaults
	}

	logFile, err := initLogger(config.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	}

	err = ctx.Run(config)
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
