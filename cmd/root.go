package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/lepinkainen/doinote/cmd/enhance"
	"github.com/lepinkainen/doinote/internal/config"
	"github.com/lepinkainen/humanlog"
	"github.com/spf13/viper"
)

// CLI represents the complete command structure for the doinote application
type CLI struct {
	// Global flags
	LogLevel string `help:"Log level (debug, info, warn, error)" default:"info" enum:"debug,info,warn,error"`
	DryRun   bool   `help:"Show what would be done without writing notes"`

	// Datasette flags
	Datasette   bool   `help:"Also write updated citations to a local SQLite database"`
	DatasetteDB string `help:"Path to SQLite database file" default:"./doinote.db"`

	Update  enhance.UpdateCmd  `cmd:"" help:"Fill the front matter of one note from its DOI"`
	Enhance enhance.EnhanceCmd `cmd:"" help:"Fill the front matter of every note with a DOI in a directory"`
	Version VersionCmd         `cmd:"" help:"Print the version"`
}

// VersionCmd prints the build version.
type VersionCmd struct{}

func (v *VersionCmd) Run() error {
	fmt.Println("doinote", config.Version)
	return nil
}

func newParser(cli *CLI, options ...kong.Option) (*kong.Kong, error) {
	options = append([]kong.Option{
		kong.Name("doinote"),
		kong.Description("Fill markdown note front matter with citation metadata from Crossref."),
		kong.UsageOnError(),
	}, options...)
	return kong.New(cli, options...)
}

// Execute runs the Kong-based CLI
func Execute() {
	initLogging(slog.LevelInfo)
	initConfig()

	var cli CLI
	parser, err := newParser(&cli)
	if err != nil {
		slog.Error("Failed to build CLI", "error", err)
		os.Exit(1)
	}

	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	initLogging(parseLevel(cli.LogLevel))
	updateGlobalConfig(&cli)

	if err := ctx.Run(); err != nil {
		slog.Error("Command failed", "error", err)
		os.Exit(1)
	}
}

func initConfig() {
	// .env values become environment variables before viper reads them
	_ = godotenv.Load()

	config.SetDefaults()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	if err := viper.BindEnv(config.KeyCrossrefMailto, "CROSSREF_MAILTO"); err != nil {
		slog.Error("Failed to bind environment variable", "error", err)
	}
	if err := viper.BindEnv(config.KeyDatasetteToken, "DATASETTE_API_TOKEN"); err != nil {
		slog.Error("Failed to bind environment variable", "error", err)
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			slog.Info("Config file not found, writing default config file...")
			if err := viper.SafeWriteConfig(); err != nil {
				slog.Warn("Error writing config file", "error", err)
			}
		} else {
			slog.Error("Fatal error config file", "error", err)
			os.Exit(1)
		}
	}

	config.InitConfig()
}

func updateGlobalConfig(cli *CLI) {
	config.SetDryRun(cli.DryRun)

	// Flags only switch the local export on, config.yaml can enable it too
	if cli.Datasette {
		viper.Set(config.KeyDatasetteOn, true)
	}
	viper.Set(config.KeyDatasetteDB, cli.DatasetteDB)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func initLogging(level slog.Level) {
	handler := humanlog.NewHandler(os.Stdout, &humanlog.Options{
		Level: level,
	})

	slog.SetDefault(slog.New(handler))
}
