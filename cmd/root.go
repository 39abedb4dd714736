/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/moviedb/internal/iofs"
	"github.com/gnames/moviedb/internal/iologger"
	app "github.com/gnames/moviedb/pkg"
	"github.com/gnames/moviedb/pkg/config"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	homeDir string
	opts    []config.Option
	cfg     *config.Config
)

// getRootCmd returns the root command with all subcommands attached.
func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Version: fmt.Sprintf("version: %s\nbuild:   %s", app.Version, app.Build),
		Use:     "moviedb",
		Short:   "moviedb loads movie dumps into a database and ranks movies",
		Long: `moviedb reads text dumps of movies, people, directors and their
relationships, loads them into a PostgreSQL or SQLite database
with foreign keys, and finds the best ranked movies of a period.

Commands:
  - create: Create database schema
  - populate: Import movie dumps
  - top: Find the best movies released within a year range

Configuration precedence (highest to lowest):
  1. CLI flags
  2. Environment variables (MOVIEDB_*), also read from a .env file
  3. Config file (~/.config/moviedb/config.yaml)
  4. Built-in defaults

Examples of environment variables:
  MOVIEDB_DATABASE_DRIVER         postgres or sqlite
  MOVIEDB_DATABASE_HOST           PostgreSQL host
  MOVIEDB_DATABASE_PATH           SQLite database file
  MOVIEDB_LOG_LEVEL               Log level (debug/info/warn/error)`,
		PersistentPreRunE: bootstrap,
		RunE:              runRoot,
		SilenceErrors:     true,
		SilenceUsage:      true,
	}

	// Remove the automatic "moviedb version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Override version flag to use -V (consistent with other gn projects)
	rootCmd.Flags().BoolP("version", "V", false, "version for moviedb")

	rootCmd.AddCommand(getCreateCmd(), getPopulateCmd(), getTopCmd())

	return rootCmd
}

func bootstrap(cmd *cobra.Command, args []string) error {
	var err error

	// Variables from .env become regular environment variables.
	if err = godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		gn.Warn("Cannot read <em>.env</em> file: %s", err)
	}

	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Initialize logging with hardcoded defaults
	// Will be reconfigured later with user's config settings
	defaultLog := config.LogConfig{
		Format:      "json",
		Level:       "info",
		Destination: "file",
	}
	if err = iologger.Init(config.LogDir(homeDir), defaultLog, false); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureSourcesFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	var cfgViper *config.Config
	if cfgViper, err = initConfig(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	opts = cfgViper.ToOptions()
	cfg.Update(opts)

	// Set HomeDir after config is loaded
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	// Reconfigure logging with user's settings, keeping the records
	// written so far.
	if err = iologger.Init(config.LogDir(cfg.HomeDir), cfg.Log, true); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded",
		"config_file", config.ConfigFilePath(homeDir),
		"driver", cfg.Database.Driver,
	)

	return nil
}

func runRoot(cmd *cobra.Command, _ []string) error {
	versionFlag(cmd)
	return cmd.Help()
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	err := getRootCmd().Execute()
	if err != nil {
		os.Exit(1)
	}
}

func initConfig(home string) (*config.Config, error) {
	var err error
	cfgPath := config.ConfigFilePath(home)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	return &res, nil
}

func initEnvVars(v *viper.Viper) {
	// Set environment variables we want.
	// We set them manually so we can see clearly which env variables are allowed.
	// These match the fields included in config.ToOptions() - i.e., persistent
	// configuration that can be stored in config.yaml.
	v.SetEnvPrefix("MOVIEDB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Database configuration
	v.BindEnv("database.driver", "MOVIEDB_DATABASE_DRIVER")
	v.BindEnv("database.host", "MOVIEDB_DATABASE_HOST")
	v.BindEnv("database.port", "MOVIEDB_DATABASE_PORT")
	v.BindEnv("database.user", "MOVIEDB_DATABASE_USER")
	v.BindEnv("database.password", "MOVIEDB_DATABASE_PASSWORD")
	v.BindEnv("database.database", "MOVIEDB_DATABASE_DATABASE")
	v.BindEnv("database.ssl_mode", "MOVIEDB_DATABASE_SSL_MODE")
	v.BindEnv("database.path", "MOVIEDB_DATABASE_PATH")
	v.BindEnv("database.load_timeout", "MOVIEDB_DATABASE_LOAD_TIMEOUT")

	// Log configuration
	v.BindEnv("log.level", "MOVIEDB_LOG_LEVEL")
	v.BindEnv("log.format", "MOVIEDB_LOG_FORMAT")
	v.BindEnv("log.destination", "MOVIEDB_LOG_DESTINATION")

	v.AutomaticEnv()
}
