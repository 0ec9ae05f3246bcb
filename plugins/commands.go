// Package plugins contains the commands of the shell. Each command is a
// shell.Command, registered with RegisterAll.
package plugins

import (
	"errors"
	"fmt"
	"io"

	"github.com/NickyBoy89/javash/color"
	"github.com/NickyBoy89/javash/colorizer"
	"github.com/NickyBoy89/javash/columns"
	"github.com/NickyBoy89/javash/resource"
	"github.com/NickyBoy89/javash/shell"
	flag "github.com/spf13/pflag"
	"golang.org/x/exp/slices"
)

var (
	// ErrNotTraversable is returned when changing into a plain file
	ErrNotTraversable = errors.New("not a directory")
	// ErrIsDirectory is returned when printing the contents of a directory
	ErrIsDirectory = errors.New("is a directory")
)

// RegisterAll adds every command to the registry
func RegisterAll(r *shell.Registry) {
	r.Register(LsCommand())
	r.Register(LsJavaCommand())
	r.Register(CdCommand())
	r.Register(PwdCommand())
	r.Register(CatCommand())
	r.Register(HelpCommand())
	r.Register(ExitCommand())
}

// LsCommand lists the children of resources by name
func LsCommand() *shell.Command {
	return &shell.Command{
		Name:  "ls",
		Topic: "files",
		Help:  "ls [-a] [-l] [paths...]: list the entries of directories, and the members of Java files",
		Run:   ls,
	}
}

func ls(ctx *shell.Context, args []string) error {
	flags := flag.NewFlagSet("ls", flag.ContinueOnError)
	flags.SetOutput(ctx.Stderr)
	flags.BoolP("all", "a", false, "Show every entry")
	flags.BoolP("list", "l", false, "Long listing format, has no effect")
	if err := flags.Parse(args); err != nil {
		return err
	}

	targets, err := ctx.ResolveAll(flags.Args())
	if err != nil {
		return err
	}

	for _, target := range targets {
		children := []resource.Resource{target}
		if target.Kind() == resource.KindDirectory || target.Kind() == resource.KindJavaFile {
			children, err = ctx.Resolver().Children(ctx.Context, target)
			if err != nil {
				return err
			}
		}

		entries := make([]string, 0, len(children))
		for _, child := range children {
			entries = append(entries, ctx.Out.RenderColor(kindColor(child.Kind()), child.Name()))
		}

		if ctx.Out.IsPiped() {
			cfg := ctx.Shell.Config()
			err = ctx.Columns.PrintColumns(ctx.Out, entries, columns.Piped(cfg.Piped.Width, cfg.Piped.Columns))
		} else {
			err = ctx.Columns.PrintHostColumns(ctx.Out, entries)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func kindColor(kind resource.Kind) color.Color {
	switch kind {
	case resource.KindDirectory:
		return color.Blue
	case resource.KindJavaFile:
		return color.Green
	case resource.KindJavaMethod:
		return color.Yellow
	}
	return color.None
}

// CdCommand points the shell at another resource
func CdCommand() *shell.Command {
	return &shell.Command{
		Name:  "cd",
		Topic: "files",
		Help:  "cd [path]: change the current resource, the root without a path",
		Run:   cd,
	}
}

func cd(ctx *shell.Context, args []string) error {
	if len(args) > 1 {
		return fmt.Errorf("too many arguments")
	}
	if len(args) == 0 {
		ctx.SetCurrent(ctx.Resolver().Root())
		return nil
	}

	target, err := ctx.Resolve(args[0])
	if err != nil {
		return err
	}
	if target.Kind() == resource.KindFile {
		return fmt.Errorf("%s: %w", target.Path(), ErrNotTraversable)
	}
	ctx.SetCurrent(target)
	return nil
}

func PwdCommand() *shell.Command {
	return &shell.Command{
		Name:  "pwd",
		Topic: "files",
		Help:  "pwd: print the path of the current resource",
		Run: func(ctx *shell.Context, args []string) error {
			ctx.Out.Println(ctx.Current().Path())
			return nil
		},
	}
}

// CatCommand prints the contents of resources, or copies its input when no
// path is given
func CatCommand() *shell.Command {
	return &shell.Command{
		Name:  "cat",
		Topic: "files",
		Help:  "cat [paths...]: print files, Java sources are colorized",
		Run:   cat,
	}
}

func cat(ctx *shell.Context, args []string) error {
	if len(args) == 0 {
		_, err := io.Copy(ctx.Out, ctx.Stdin)
		return err
	}

	targets, err := ctx.ResolveAll(args)
	if err != nil {
		return err
	}

	for _, target := range targets {
		var text string
		switch target := target.(type) {
		case *resource.Directory:
			return fmt.Errorf("%s: %w", target.Path(), ErrIsDirectory)
		case *resource.File:
			var contents []byte
			contents, err = target.Contents()
			text = string(contents)
		case *resource.JavaFile:
			var source []byte
			source, err = target.Source()
			if err == nil {
				text, err = colorizer.Format(ctx.Context, ctx.Out, source)
			}
		case *resource.JavaField:
			text, err = colorizer.FormatRange(ctx.Context, ctx.Out, target.Source(), target.Start(), target.End())
			text += "\n"
		case *resource.JavaMethod:
			text, err = colorizer.FormatRange(ctx.Context, ctx.Out, target.Source(), target.Start(), target.End())
			text += "\n"
		}
		if err != nil {
			return err
		}
		ctx.Out.Print(text)
	}
	return nil
}

// HelpCommand describes the commands of the shell, grouped by topic
func HelpCommand() *shell.Command {
	return &shell.Command{
		Name:  "help",
		Topic: "shell",
		Help:  "help [commands...]: describe commands, every command without arguments",
		Run:   help,
	}
}

func help(ctx *shell.Context, args []string) error {
	registry := ctx.Registry()
	if len(args) > 0 {
		for _, name := range args {
			overloads := registry.Overloads(name)
			if len(overloads) == 0 {
				return fmt.Errorf("%s: %w", name, shell.ErrUnknownCommand)
			}
			for _, c := range overloads {
				ctx.Out.Println(c.Help)
			}
		}
		return nil
	}

	byTopic := make(map[string][]string)
	var topics []string
	for _, name := range registry.Names() {
		for _, c := range registry.Overloads(name) {
			if !slices.Contains(topics, c.Topic) {
				topics = append(topics, c.Topic)
			}
			if !slices.Contains(byTopic[c.Topic], name) {
				byTopic[c.Topic] = append(byTopic[c.Topic], name)
			}
		}
	}
	slices.Sort(topics)

	for _, topic := range topics {
		ctx.Out.PrintlnColor(color.Red, "["+topic+"]")
		if err := ctx.Columns.PrintHostColumns(ctx.Out, byTopic[topic]); err != nil {
			return err
		}
	}
	return nil
}

func ExitCommand() *shell.Command {
	return &shell.Command{
		Name:  "exit",
		Topic: "shell",
		Help:  "exit: leave the shell",
		Run: func(ctx *shell.Context, args []string) error {
			ctx.Exit()
			return nil
		},
	}
}
