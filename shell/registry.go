package shell

import (
	"errors"
	"fmt"

	"github.com/NickyBoy89/javash/resource"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// ErrUnknownCommand is returned when no command is registered under a name
var ErrUnknownCommand = errors.New("command not found")

// Command is a named operation of the shell
type Command struct {
	Name  string
	Topic string
	Help  string
	// Scopes restricts the command to the given kinds of current resource.
	// A command without scopes applies anywhere, unless another command with
	// the same name is scoped to the current resource
	Scopes []resource.Kind

	Run func(ctx *Context, args []string) error
}

// InScope reports whether the command is scoped to the given kind
func (c *Command) InScope(kind resource.Kind) bool {
	return slices.Contains(c.Scopes, kind)
}

// Registry maps command names to their overloads
type Registry struct {
	commands map[string][]*Command
}

func NewRegistry() *Registry {
	return &Registry{commands: make(map[string][]*Command)}
}

// Register adds a command, as an overload if the name is already taken
func (r *Registry) Register(c *Command) {
	r.commands[c.Name] = append(r.commands[c.Name], c)
}

// Lookup returns the command to run for a name, given the kind of the current
// resource. A command scoped to the kind is preferred over an unscoped one
func (r *Registry) Lookup(name string, kind resource.Kind) (*Command, error) {
	var fallback *Command
	for _, c := range r.commands[name] {
		if c.InScope(kind) {
			return c, nil
		}
		if len(c.Scopes) == 0 && fallback == nil {
			fallback = c
		}
	}
	if fallback == nil {
		return nil, fmt.Errorf("%s: %w", name, ErrUnknownCommand)
	}
	return fallback, nil
}

// Names returns the registered command names, sorted
func (r *Registry) Names() []string {
	names := maps.Keys(r.commands)
	slices.Sort(names)
	return names
}

// Overloads returns every command registered under a name
func (r *Registry) Overloads(name string) []*Command {
	return r.commands[name]
}
