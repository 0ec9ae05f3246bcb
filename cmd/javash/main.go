// Command javash is an interactive shell over a tree of Java sources, where
// Java files can be browsed like directories of fields and methods.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/NickyBoy89/javash/config"
	"github.com/NickyBoy89/javash/plugins"
	"github.com/NickyBoy89/javash/shell"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	configFiles []string
	level       string
	command     string
)

var rootCmd = &cobra.Command{
	Use:           "javash [directory]",
	Short:         "An interactive shell over Java sources",
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringVarP(&command, "command", "c", "", "command line to run before exiting")
	rootCmd.Flags().StringSliceVar(&configFiles, "config", []string{}, "config file(s), later files are merged over earlier ones")
	rootCmd.Flags().StringVar(&level, "level", "", "log level (trace, debug, info, warn, error), overrides the config")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFiles)
	if err != nil {
		return err
	}
	if level == "" {
		level = cfg.Log.Level
	}
	logLevel, err := log.ParseLevel(level)
	if err != nil {
		return err
	}
	log.SetOutput(os.Stderr)
	log.SetLevel(logLevel)

	dir, err := os.Getwd()
	if err != nil {
		return err
	}
	if len(args) > 0 {
		if dir, err = filepath.Abs(args[0]); err != nil {
			return err
		}
	}

	tty := term.IsTerminal(int(os.Stdout.Fd()))
	registry := shell.NewRegistry()
	plugins.RegisterAll(registry)

	sh, err := shell.New(
		shell.WithStdIO(os.Stdin, os.Stdout, os.Stderr),
		shell.WithFs(afero.NewOsFs(), filepath.ToSlash(dir)),
		shell.WithRegistry(registry),
		shell.WithConfig(cfg),
		shell.WithTTY(tty),
		shell.WithWidth(terminalWidth),
	)
	if err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"directory": dir,
		"tty":       tty,
		"config":    configFiles,
	}).Debug("Starting shell")

	ctx := context.Background()
	switch {
	case command != "":
		return sh.Run(ctx, strings.NewReader(command), "")
	case term.IsTerminal(int(os.Stdin.Fd())):
		return sh.Interactive(ctx)
	}
	return sh.Run(ctx, os.Stdin, "")
}

// terminalWidth is the width of the terminal on standard output, or zero if
// it is not a terminal
func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0
	}
	return width
}
