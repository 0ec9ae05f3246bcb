// Package shell interprets the command language of javash. Command lines are
// parsed as POSIX shell, and every command is dispatched to the Registry
// according to the resource the shell currently points at.
package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/NickyBoy89/javash/config"
	"github.com/NickyBoy89/javash/resource"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/syntax"
)

// ErrUnsupported is returned for shell constructs that javash does not run,
// such as redirections, loops or subshells
var ErrUnsupported = errors.New("unsupported shell construct")

// A Shell runs command lines against a filesystem. It is not safe for
// concurrent use
type Shell struct {
	cfg      config.Config
	registry *Registry
	resolver *resource.Resolver
	current  resource.Resource
	env      expand.Environ

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	// tty is set when the shell's output is a terminal
	tty   bool
	width func() int

	exiting bool
}

// New returns a shell. Unset options fall back to their defaults: an empty
// in-memory filesystem, the default configuration, the process's environment
// and discarded output
func New(opts ...shellOption) (*Shell, error) {
	fs := afero.NewMemMapFs()
	s := &Shell{
		cfg:      config.Default(),
		registry: NewRegistry(),
		resolver: resource.NewResolver(fs),
		env:      expand.ListEnviron(os.Environ()...),
		stdin:    strings.NewReader(""),
		stdout:   io.Discard,
		stderr:   io.Discard,
		tty:      true,
	}
	s.current = s.resolver.Root()

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// shellOption can be passed to New to alter a Shell's behaviour
type shellOption func(*Shell) error

// WithStdIO sets the standard streams of the shell, nil writers discard
func WithStdIO(in io.Reader, out, err io.Writer) shellOption {
	return func(s *Shell) error {
		if in != nil {
			s.stdin = in
		}
		if out == nil {
			out = io.Discard
		}
		s.stdout = out
		if err == nil {
			err = io.Discard
		}
		s.stderr = err
		return nil
	}
}

// WithFs sets the filesystem of the shell, and points the shell at the
// resource found at dir
func WithFs(fs afero.Fs, dir string) shellOption {
	return func(s *Shell) error {
		s.resolver = resource.NewResolver(fs)
		s.current = s.resolver.Root()
		if dir == "" {
			return nil
		}
		res, err := s.resolver.Open(context.Background(), dir)
		if err != nil {
			return fmt.Errorf("could not open %s: %w", dir, err)
		}
		s.current = res
		return nil
	}
}

// WithRegistry sets the commands the shell can run
func WithRegistry(registry *Registry) shellOption {
	return func(s *Shell) error {
		s.registry = registry
		return nil
	}
}

// WithCommand adds a single command to the shell's registry
func WithCommand(c *Command) shellOption {
	return func(s *Shell) error {
		s.registry.Register(c)
		return nil
	}
}

func WithConfig(cfg config.Config) shellOption {
	return func(s *Shell) error {
		s.cfg = cfg
		return nil
	}
}

func WithEnv(env expand.Environ) shellOption {
	return func(s *Shell) error {
		s.env = env
		return nil
	}
}

// WithTTY tells the shell whether its output is a terminal. When it is not,
// every command writes as if it were piped
func WithTTY(tty bool) shellOption {
	return func(s *Shell) error {
		s.tty = tty
		return nil
	}
}

// WithWidth sets how the shell learns the width of its terminal
func WithWidth(width func() int) shellOption {
	return func(s *Shell) error {
		s.width = width
		return nil
	}
}

// Current returns the resource the shell is pointed at
func (s *Shell) Current() resource.Resource {
	return s.current
}

func (s *Shell) Config() config.Config {
	return s.cfg
}

func (s *Shell) Registry() *Registry {
	return s.registry
}

// Exited reports whether a command asked the shell to stop
func (s *Shell) Exited() bool {
	return s.exiting
}

// Prompt returns the interactive prompt for the current resource
func (s *Shell) Prompt() string {
	return strings.ReplaceAll(s.cfg.Prompt, "{resource}", s.current.Name())
}

// Run parses a whole program and runs its statements in order, stopping at
// the first one that fails
func (s *Shell) Run(ctx context.Context, reader io.Reader, name string) error {
	prog, err := syntax.NewParser().Parse(reader, name)
	if err != nil {
		return err
	}
	for _, stmt := range prog.Stmts {
		if err := s.Exec(ctx, stmt); err != nil {
			return err
		}
		if s.exiting {
			return nil
		}
	}
	return nil
}

// RunLine runs a single command line
func (s *Shell) RunLine(ctx context.Context, line string) error {
	return s.Run(ctx, strings.NewReader(line), "")
}

// Exec runs a single parsed statement on the shell's standard streams
func (s *Shell) Exec(ctx context.Context, stmt *syntax.Stmt) error {
	return s.stmt(ctx, stmt, s.stdin, s.stdout, !s.tty)
}

// Interactive reads statements from the shell's input until it ends or a
// command exits the shell. Failing commands are reported, and do not stop
// the shell
func (s *Shell) Interactive(ctx context.Context) error {
	parser := syntax.NewParser()
	fmt.Fprint(s.stdout, s.Prompt())
	fn := func(stmts []*syntax.Stmt) bool {
		if parser.Incomplete() {
			fmt.Fprint(s.stdout, "> ")
			return true
		}
		for _, stmt := range stmts {
			if err := s.Exec(ctx, stmt); err != nil {
				fmt.Fprintln(s.stderr, err)
			}
			if s.exiting || ctx.Err() != nil {
				return false
			}
		}
		fmt.Fprint(s.stdout, s.Prompt())
		return true
	}
	return parser.Interactive(s.stdin, fn)
}

func (s *Shell) stmt(ctx context.Context, stmt *syntax.Stmt, stdin io.Reader, stdout io.Writer, piped bool) error {
	switch {
	case len(stmt.Redirs) > 0:
		return fmt.Errorf("%w: redirection", ErrUnsupported)
	case stmt.Background, stmt.Coprocess:
		return fmt.Errorf("%w: background command", ErrUnsupported)
	case stmt.Negated:
		return fmt.Errorf("%w: negation", ErrUnsupported)
	}

	switch cmd := stmt.Cmd.(type) {
	case nil:
		return nil
	case *syntax.CallExpr:
		if len(cmd.Assigns) > 0 {
			return fmt.Errorf("%w: assignment", ErrUnsupported)
		}
		fields, err := expand.Fields(&expand.Config{Env: s.env}, cmd.Args...)
		if err != nil {
			return err
		}
		if len(fields) == 0 {
			return nil
		}
		return s.call(ctx, fields, stdin, stdout, piped)
	case *syntax.BinaryCmd:
		return s.binary(ctx, cmd, stdin, stdout, piped)
	}
	return fmt.Errorf("%w: %T", ErrUnsupported, stmt.Cmd)
}

func (s *Shell) binary(ctx context.Context, cmd *syntax.BinaryCmd, stdin io.Reader, stdout io.Writer, piped bool) error {
	switch cmd.Op {
	case syntax.Pipe:
		// The left stage always writes for another program
		var buf bytes.Buffer
		if err := s.stmt(ctx, cmd.X, stdin, &buf, true); err != nil {
			return err
		}
		if s.exiting {
			return nil
		}
		return s.stmt(ctx, cmd.Y, &buf, stdout, piped)
	case syntax.AndStmt:
		if err := s.stmt(ctx, cmd.X, stdin, stdout, piped); err != nil {
			return err
		}
		if s.exiting {
			return nil
		}
		return s.stmt(ctx, cmd.Y, stdin, stdout, piped)
	case syntax.OrStmt:
		err := s.stmt(ctx, cmd.X, stdin, stdout, piped)
		if err == nil || s.exiting {
			return nil
		}
		fmt.Fprintln(s.stderr, err)
		return s.stmt(ctx, cmd.Y, stdin, stdout, piped)
	}
	return fmt.Errorf("%w: %s", ErrUnsupported, cmd.Op)
}

func (s *Shell) call(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer, piped bool) error {
	kind := s.current.Kind()
	cmd, err := s.registry.Lookup(args[0], kind)
	if err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"command": args[0],
		"args":    args[1:],
		"scope":   kind,
		"piped":   piped,
	}).Debug("Running command")

	c := &Context{
		Context: ctx,
		Shell:   s,
		Out:     NewOutput(stdout, piped, s.cfg.Color),
		Stdin:   stdin,
		Stderr:  s.stderr,
		Columns: &Columns{cfg: s.cfg, width: s.width},
	}
	if err := cmd.Run(c, args[1:]); err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}
	return nil
}
