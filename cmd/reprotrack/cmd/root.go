// Package cmd implements the reprotrack CLI commands.
package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/talgya/reprotrack/internal/tracker"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "reprotrack",
	Short: "Reproductive state tracker for role-play chats",
	Long: `reprotrack keeps a character's menstrual cycle, contraception, pregnancy
and STI state across a role-play chat. It scans messages for tags, rolls
conception and transmission with a fair random source, and renders the
state into prompt text for the chat host.

Run 'reprotrack serve' to expose the HTTP bridge, or use the subcommands
to drive the tracker directly.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging()
	},
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("Error: "+err.Error()))
	}
	return err
}

func init() {
	cobra.OnInitialize(initConfig)

	f := rootCmd.PersistentFlags()
	f.StringVar(&cfgFile, "config", "", "config file (default ./reprotrack.yaml)")
	f.BoolP("verbose", "v", false, "debug logging")
	f.String("store", "sqlite", "settings backend: sqlite or redis")
	f.String("db", "data/reprotrack.db", "SQLite database path")
	f.String("redis-addr", "localhost:6379", "Redis address when --store=redis")
	f.String("redis-prefix", "reprotrack", "Redis key prefix")
	f.StringP("chat", "c", "", "chat id (default chat when empty)")
	f.String("language", "", "override the prompt language (en, ru)")
	f.String("odds-file", "", "YAML file overriding the probability tables")
	f.Bool("low-fertility", false, "use the low-fertility odds variant")
	f.String("prompt-dir", "", "write prompt slots to files in this directory")
	f.Duration("save-debounce", 500*time.Millisecond, "coalesce settings writes over this delay")
	f.Duration("result-clear-delay", tracker.DefaultResultDelay, "how long roll results stay in the prompt")
	f.Bool("plain", false, "print without styling")

	for _, name := range []string{
		"verbose", "store", "db", "redis-addr", "redis-prefix", "chat", "language",
		"odds-file", "low-fertility", "prompt-dir", "save-debounce", "result-clear-delay", "plain",
	} {
		viper.BindPFlag(strings.ReplaceAll(name, "-", "_"), f.Lookup(name))
	}
}

func initConfig() {
	// .env is optional.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintln(os.Stderr, "warning: .env:", err)
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("reprotrack")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}

	viper.SetEnvPrefix("REPRO")
	viper.AutomaticEnv()

	viper.SetDefault("random_org_key", "")
	viper.SetDefault("admin_key", "")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			fmt.Fprintln(os.Stderr, "warning: config:", err)
		}
	}
}

func setupLogging() {
	level := slog.LevelInfo
	if viper.GetBool("verbose") {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}
