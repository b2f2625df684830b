// Command base64-converter opens a window that encodes any file as Base64
// text for viewing, copying or saving.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"base64-converter/internal/app"
	"base64-converter/internal/config"
	"base64-converter/internal/logger"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "base64-converter [file]",
		Short: "Convert any file to Base64 text",
		Long: `base64-converter opens a desktop window for turning a file into standard
Base64 text. Pick a file, convert it, then copy the result to the clipboard
or save it as a text file.

An optional file argument preselects the input so Convert is ready at once.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runGUI,
	}

	cmd.PersistentFlags().String("config", "", "config file (default: ./base64-converter.yaml or ~/.config/base64-converter/base64-converter.yaml)")
	cmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error")
	cmd.PersistentFlags().String("log-format", "", "log format: console or json")
	cmd.Flags().String("clipboard", "", "clipboard backend: app or system")

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), app.Version)
		},
	})
	return cmd
}

// initConfig layers flags the user set over env vars, the config file and
// defaults.
func initConfig(cmd *cobra.Command) (*config.Config, *viper.Viper, error) {
	cfgFile, _ := cmd.Flags().GetString("config")
	v := config.New(cfgFile)

	bindings := map[string]string{
		"log.level":         "log-level",
		"log.format":        "log-format",
		"clipboard.backend": "clipboard",
	}
	for key, flag := range bindings {
		f := cmd.Flags().Lookup(flag)
		if f == nil || !f.Changed {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return nil, nil, err
		}
	}

	cfg, err := config.Load(v)
	if err != nil {
		return nil, nil, err
	}
	return cfg, v, nil
}

// resolveInputPath returns the absolute path of the optional file argument,
// or "" when none was given.
func resolveInputPath(args []string) (string, error) {
	if len(args) == 0 {
		return "", nil
	}
	path, err := filepath.Abs(args[0])
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", args[0], err)
	}
	return path, nil
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, v, err := initConfig(cmd)
	if err != nil {
		return err
	}
	path, err := resolveInputPath(args)
	if err != nil {
		return err
	}

	level, err := logger.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	log := logger.New(logger.Format(cfg.Log.Format), level)
	if used := v.ConfigFileUsed(); used != "" {
		log.Info("Main", "using config file", map[string]interface{}{"path": used})
	}

	application, err := app.New(cfg, log)
	if err != nil {
		return fmt.Errorf("initialize application: %w", err)
	}
	application.Preselect(path)

	return application.Run()
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
