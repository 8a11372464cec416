package main

import (
	"catadmin/internal/api"
	"catadmin/internal/config"
	"catadmin/internal/logging"
	"catadmin/internal/render"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
)

type CLI struct {
	List   ListCmd   `cmd:"" aliases:"ls" help:"List products"`
	Show   ShowCmd   `cmd:"" help:"Show product details"`
	Create CreateCmd `cmd:"" help:"Create a product"`
	Edit   EditCmd   `cmd:"" aliases:"e" help:"Edit a product"`
	Export ExportCmd `cmd:"" help:"Export one page of products as CSV"`
	Open   OpenCmd   `cmd:"" aliases:"o" help:"Open a product's first image in the browser"`
	Browse BrowseCmd `cmd:"" aliases:"b" help:"Browse the catalog interactively"`
	Init   InitCmd   `cmd:"" help:"Write a config file with default settings"`

	Completion CompletionCmd `cmd:"" help:"Generate shell completions"`

	ConfigPath string `name:"config" short:"c" help:"Path to config file"`
	APIURL     string `name:"api-url" help:"Product API base URL"`
	LogLevel   string `name:"log-level" help:"Log level (debug, info, warn, error)"`

	closeLog func() error
}

func (c *CLI) AfterApply(ctx *kong.Context) error {
	configPath := c.ConfigPath
	if configPath == "" {
		configPath = config.DefaultConfigPath()
	}

	cfg := config.Default()
	if !usesDefaults(ctx.Command()) {
		loaded, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	if c.APIURL != "" {
		cfg.APIURL = c.APIURL
	}
	if c.LogLevel != "" {
		cfg.LogLevel = c.LogLevel
	}

	// The interactive screen owns the terminal; logs go to a file or nowhere.
	var fallback io.Writer = os.Stderr
	if ctx.Command() == "browse" {
		fallback = io.Discard
	}
	logOut, closeLog, err := logging.Output(cfg.LogFile, fallback)
	if err != nil {
		return err
	}
	c.closeLog = closeLog
	log, err := logging.New(cfg.LogLevel, cfg.LogFormat, logOut)
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}

	client := api.NewClient(cfg.APIURL, api.WithTimeout(cfg.Timeout), api.WithLogger(log))

	globals := &Globals{
		Ctx:        context.Background(),
		Svc:        client,
		Prober:     client,
		Cfg:        cfg,
		ConfigPath: configPath,
		Out:        os.Stdout,
		Render:     render.NewLipglossRendererAuto(os.Stdout),
		Log:        log,
		Now:        time.Now,
	}
	ctx.Bind(globals)
	return nil
}

// usesDefaults reports whether command runs without reading the config file.
func usesDefaults(command string) bool {
	return command == "init" || strings.HasPrefix(command, "completion")
}

func main() {
	// A missing .env is normal; the config file and environment still apply.
	_ = godotenv.Load()

	cli := CLI{}
	ctx := kong.Parse(&cli,
		kong.Name("catadmin"),
		kong.Description("Product catalog admin console"),
		kong.UsageOnError(),
	)
	err := ctx.Run()
	if cli.closeLog != nil {
		cli.closeLog()
	}
	ctx.FatalIfErrorf(err)
}
