package resource

import (
	"context"
	"path"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// Resolver turns paths into resources on a filesystem
type Resolver struct {
	Fs afero.Fs
}

// NewResolver returns a resolver for the given filesystem
func NewResolver(fs afero.Fs) *Resolver {
	return &Resolver{Fs: fs}
}

// Root is the top directory of the filesystem
func (r *Resolver) Root() Resource {
	return &Directory{fs: r.Fs, path: "/"}
}

// Open returns the resource at an absolute path
func (r *Resolver) Open(ctx context.Context, p string) (Resource, error) {
	return r.Resolve(ctx, r.Root(), p)
}

// Resolve finds the resource at a path relative to base. Absolute paths
// start from the root directory. Members of a Java file are addressed as its
// children, by field name, method name, or method signature
func (r *Resolver) Resolve(ctx context.Context, base Resource, p string) (Resource, error) {
	current := base
	if strings.HasPrefix(p, "/") {
		current = r.Root()
	}

	for _, segment := range strings.Split(p, "/") {
		switch segment {
		case "", ".":
			continue
		case "..":
			current = current.Parent()
			continue
		}

		next, err := r.child(ctx, current, segment)
		if err != nil {
			return nil, err
		}
		current = next
	}

	log.WithFields(log.Fields{
		"path":     p,
		"resolved": current.Path(),
		"kind":     current.Kind(),
	}).Debug("Resolved resource")
	return current, nil
}

func (r *Resolver) child(ctx context.Context, parent Resource, name string) (Resource, error) {
	switch parent := parent.(type) {
	case *Directory:
		full := path.Join(parent.path, name)
		info, err := r.Fs.Stat(full)
		if err != nil {
			return nil, notFound(full, err)
		}
		return r.fromInfo(full, info.IsDir()), nil
	case *JavaFile:
		return parent.Member(ctx, name)
	}
	return nil, &NotFoundError{Path: parent.Path() + "/" + name, Err: ErrNotFound}
}

func (r *Resolver) fromInfo(full string, isDir bool) Resource {
	switch {
	case isDir:
		return &Directory{fs: r.Fs, path: full}
	case IsJavaSource(full):
		return &JavaFile{fs: r.Fs, path: full}
	}
	return &File{fs: r.Fs, path: full}
}

// Children lists the resources contained in a resource: the entries of a
// directory sorted by name, or the members of a Java file in declaration
// order. Other resources have no children
func (r *Resolver) Children(ctx context.Context, res Resource) ([]Resource, error) {
	switch res := res.(type) {
	case *Directory:
		// ReadDir sorts the entries by name
		infos, err := afero.ReadDir(r.Fs, res.path)
		if err != nil {
			return nil, notFound(res.path, err)
		}
		children := make([]Resource, 0, len(infos))
		for _, info := range infos {
			children = append(children, r.fromInfo(path.Join(res.path, info.Name()), info.IsDir()))
		}
		return children, nil
	case *JavaFile:
		return res.Members(ctx)
	}
	return nil, nil
}
