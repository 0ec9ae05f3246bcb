// Package resource models the things a shell session can point at: directories,
// plain files, Java source files, and the fields and methods inside them.
package resource

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/NickyBoy89/javash/parsing"
	"github.com/NickyBoy89/javash/symbol"
	"github.com/spf13/afero"
)

// Kind tells the variants of a Resource apart
type Kind int

const (
	KindDirectory Kind = iota
	KindFile
	KindJavaFile
	KindJavaField
	KindJavaMethod
)

func (k Kind) String() string {
	switch k {
	case KindDirectory:
		return "directory"
	case KindFile:
		return "file"
	case KindJavaFile:
		return "java"
	case KindJavaField:
		return "field"
	case KindJavaMethod:
		return "method"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Resource is a located, typed artifact. The set of implementations is closed:
// *Directory, *File, *JavaFile, *JavaField and *JavaMethod
type Resource interface {
	// Name is the last element of the resource's path
	Name() string
	// Path is the absolute path of the resource, members are addressed as
	// children of their file
	Path() string
	Kind() Kind
	// Parent returns the enclosing resource, the root directory is its own parent
	Parent() Resource
	// String is the textual representation of the resource
	String() string

	sealed()
}

// Directory is a directory on the filesystem
type Directory struct {
	fs   afero.Fs
	path string
}

func (d *Directory) Name() string {
	if d.path == "/" {
		return "/"
	}
	return path.Base(d.path)
}
func (d *Directory) Path() string     { return d.path }
func (d *Directory) Kind() Kind       { return KindDirectory }
func (d *Directory) Parent() Resource { return &Directory{fs: d.fs, path: path.Dir(d.path)} }
func (d *Directory) String() string   { return d.path }
func (d *Directory) sealed()          {}

// File is any file that is not Java source
type File struct {
	fs   afero.Fs
	path string
}

func (f *File) Name() string     { return path.Base(f.path) }
func (f *File) Path() string     { return f.path }
func (f *File) Kind() Kind       { return KindFile }
func (f *File) Parent() Resource { return &Directory{fs: f.fs, path: path.Dir(f.path)} }
func (f *File) String() string   { return f.path }
func (f *File) sealed()          {}

// Contents reads the whole file
func (f *File) Contents() ([]byte, error) {
	data, err := afero.ReadFile(f.fs, f.path)
	if err != nil {
		return nil, notFound(f.path, err)
	}
	return data, nil
}

// JavaFile is a Java source file. Its source is read and parsed again on every
// access, so it always reflects the file as it currently is
type JavaFile struct {
	fs   afero.Fs
	path string
}

func (f *JavaFile) Name() string     { return path.Base(f.path) }
func (f *JavaFile) Path() string     { return f.path }
func (f *JavaFile) Kind() Kind       { return KindJavaFile }
func (f *JavaFile) Parent() Resource { return &Directory{fs: f.fs, path: path.Dir(f.path)} }
func (f *JavaFile) sealed()          {}

// String returns the full source of the file, or nothing if it can no longer
// be read
func (f *JavaFile) String() string {
	source, err := f.Source()
	if err != nil {
		return ""
	}
	return string(source)
}

// Source reads the file's source code
func (f *JavaFile) Source() ([]byte, error) {
	source, err := afero.ReadFile(f.fs, f.path)
	if err != nil {
		return nil, notFound(f.path, err)
	}
	return source, nil
}

// Parse reads and parses the file
func (f *JavaFile) Parse(ctx context.Context) (*parsing.SourceFile, error) {
	source, err := f.Source()
	if err != nil {
		return nil, err
	}
	return parsing.Parse(ctx, f.path, source)
}

// JavaClass returns the first type declared in the file
func (f *JavaFile) JavaClass(ctx context.Context) (*symbol.ClassScope, error) {
	file, err := f.Parse(ctx)
	if err != nil {
		return nil, err
	}
	return file.Symbols.BaseClass, nil
}

// Members returns a resource for every field, then every method, of the
// file's class, in declaration order
func (f *JavaFile) Members(ctx context.Context) ([]Resource, error) {
	file, err := f.Parse(ctx)
	if err != nil {
		return nil, err
	}
	class := file.Symbols.BaseClass
	members := make([]Resource, 0, len(class.Fields)+len(class.Methods))
	for _, field := range class.Fields {
		members = append(members, &JavaField{member{file: f, source: file.Source, def: field}})
	}
	for _, method := range class.Methods {
		members = append(members, &JavaMethod{member{file: f, source: file.Source, def: method}})
	}
	return members, nil
}

// Member finds a field by name, or a method by signature. A method can also be
// found by its bare name, in which case the first overload is returned
func (f *JavaFile) Member(ctx context.Context, name string) (Resource, error) {
	file, err := f.Parse(ctx)
	if err != nil {
		return nil, err
	}
	class := file.Symbols.BaseClass

	if fields := class.FindField().ByName(name); len(fields) > 0 {
		return &JavaField{member{file: f, source: file.Source, def: fields[0]}}, nil
	}
	methods := class.FindMethod().BySignature(name)
	if len(methods) == 0 {
		methods = class.FindMethod().ByName(name)
	}
	if len(methods) > 0 {
		return &JavaMethod{member{file: f, source: file.Source, def: methods[0]}}, nil
	}
	return nil, &NotFoundError{Path: f.path + "/" + name, Err: ErrNotFound}
}

// member is shared by fields and methods. It keeps the source it was parsed
// from, so its text matches its byte offsets
type member struct {
	file   *JavaFile
	source []byte
	def    *symbol.Definition
}

func (m member) Parent() Resource              { return m.file }
func (m member) Definition() *symbol.Definition { return m.def }
func (m member) Source() []byte                { return m.source }
func (m member) String() string                { return m.def.Source(m.source) }
func (m member) sealed()                       {}

// Start and End are the offsets of the member's declaration in Source
func (m member) Start() uint32 { return m.def.StartByte }
func (m member) End() uint32   { return m.def.EndByte }

// JavaField is a single field of a Java class
type JavaField struct{ member }

func (f *JavaField) Name() string { return f.def.Name }
func (f *JavaField) Path() string { return f.file.path + "/" + f.Name() }
func (f *JavaField) Kind() Kind   { return KindJavaField }

// JavaMethod is a single method or constructor of a Java class
type JavaMethod struct{ member }

// Name is the method's signature, so that overloads are told apart
func (m *JavaMethod) Name() string { return m.def.Signature() }
func (m *JavaMethod) Path() string { return m.file.path + "/" + m.Name() }
func (m *JavaMethod) Kind() Kind   { return KindJavaMethod }

// IsJavaSource reports whether a file name has the Java source extension
func IsJavaSource(name string) bool {
	return strings.HasSuffix(name, ".java")
}
