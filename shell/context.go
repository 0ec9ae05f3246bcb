package shell

import (
	"context"
	"io"

	"github.com/NickyBoy89/javash/resource"
)

// Context is passed to every command. It contains the state of the Shell
// that a command may need
type Context struct {
	Context context.Context
	Shell   *Shell

	// Out is the command's standard output, either the shell's own output or
	// the input of the next stage of a pipeline
	Out *Output
	// Stdin is the output of the previous stage of a pipeline, or the shell's
	// standard input
	Stdin  io.Reader
	Stderr io.Writer

	// Columns prints entries in columns for the shell's terminal
	Columns *Columns
}

// Current returns the resource the shell is pointed at
func (c *Context) Current() resource.Resource {
	return c.Shell.current
}

// SetCurrent points the shell at another resource
func (c *Context) SetCurrent(res resource.Resource) {
	c.Shell.current = res
}

// Resolve finds a resource relative to the current one
func (c *Context) Resolve(path string) (resource.Resource, error) {
	return c.Shell.resolver.Resolve(c.Context, c.Shell.current, path)
}

// ResolveAll resolves every path, stopping at the first one that cannot be
// resolved. With no paths, the current resource is returned
func (c *Context) ResolveAll(paths []string) ([]resource.Resource, error) {
	if len(paths) == 0 {
		paths = []string{"."}
	}
	resources := make([]resource.Resource, 0, len(paths))
	for _, path := range paths {
		res, err := c.Resolve(path)
		if err != nil {
			return nil, err
		}
		resources = append(resources, res)
	}
	return resources, nil
}

func (c *Context) Resolver() *resource.Resolver {
	return c.Shell.resolver
}

func (c *Context) Registry() *Registry {
	return c.Shell.registry
}

// Exit stops the shell once the command returns
func (c *Context) Exit() {
	c.Shell.exiting = true
}
