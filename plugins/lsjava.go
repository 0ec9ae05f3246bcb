package plugins

import (
	"context"
	"io"
	"strings"

	"github.com/NickyBoy89/javash/color"
	"github.com/NickyBoy89/javash/colorizer"
	"github.com/NickyBoy89/javash/columns"
	"github.com/NickyBoy89/javash/resource"
	"github.com/NickyBoy89/javash/shell"
	"github.com/NickyBoy89/javash/symbol"
	flag "github.com/spf13/pflag"
)

// PipeOut is where a command writes its output. It knows whether the output
// is consumed by another program, and how to render colors for it
type PipeOut interface {
	io.Writer
	color.Renderer
	IsPiped() bool
}

// ColumnPrinter prints lists of entries in columns
type ColumnPrinter interface {
	// PrintColumns lays out the entries with explicit attributes
	PrintColumns(w io.Writer, entries []string, attr columns.Attributes) error
	// PrintHostColumns lays out the entries the way the host terminal does
	PrintHostColumns(w io.Writer, entries []string) error
}

// LsJava lists the fields and methods of Java files, or prints the source of
// Java members
type LsJava struct {
	Printer ColumnPrinter
	// Piped is the layout used when the output is piped
	Piped columns.Attributes
}

// NewLsJava returns a listing that prints piped output 120 characters wide,
// with at least one column
func NewLsJava(printer ColumnPrinter) *LsJava {
	return &LsJava{Printer: printer, Piped: columns.Piped(120, 1)}
}

// Run lists every resource in order, and stops at the first error. The list
// option is accepted for compatibility with the generic ls, and has no effect
func (l *LsJava) Run(ctx context.Context, showAll, list bool, paths []resource.Resource, out PipeOut) error {
	for _, res := range paths {
		var err error
		switch res := res.(type) {
		case *resource.JavaFile:
			if showAll {
				err = l.source(ctx, res, out)
			} else {
				err = l.members(ctx, res, out)
			}
		case *resource.JavaField:
			err = l.member(ctx, res.Source(), res.Start(), res.End(), out)
		case *resource.JavaMethod:
			err = l.member(ctx, res.Source(), res.Start(), res.End(), out)
		case *resource.Directory, *resource.File:
			// Not Java, there is nothing to list
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// source prints the whole file, colorized, as it is written
func (l *LsJava) source(ctx context.Context, file *resource.JavaFile, out PipeOut) error {
	source, err := file.Source()
	if err != nil {
		return err
	}
	text, err := colorizer.Format(ctx, out, source)
	if err != nil {
		return err
	}
	_, err = io.WriteString(out, text)
	return err
}

func (l *LsJava) members(ctx context.Context, file *resource.JavaFile, out PipeOut) error {
	class, err := file.JavaClass(ctx)
	if err != nil {
		return err
	}

	fields := make([]string, 0, len(class.Fields))
	for _, field := range class.Fields {
		fields = append(fields, FieldEntry(field, out))
	}
	methods := make([]string, 0, len(class.Methods))
	for _, method := range class.Methods {
		methods = append(methods, MethodEntry(method, out))
	}

	if out.IsPiped() {
		if err := l.Printer.PrintColumns(out, fields, l.Piped); err != nil {
			return err
		}
		return l.Printer.PrintColumns(out, methods, l.Piped)
	}

	if err := writeLines(out, "", out.RenderColor(color.Red, "[fields]")); err != nil {
		return err
	}
	if err := l.Printer.PrintHostColumns(out, fields); err != nil {
		return err
	}
	if err := writeLines(out, "", out.RenderColor(color.Red, "[methods]")); err != nil {
		return err
	}
	if err := l.Printer.PrintHostColumns(out, methods); err != nil {
		return err
	}
	return writeLines(out, "")
}

// member prints a single declaration after a blank line
func (l *LsJava) member(ctx context.Context, source []byte, start, end uint32, out PipeOut) error {
	text, err := colorizer.FormatRange(ctx, out, source, start, end)
	if err != nil {
		return err
	}
	return writeLines(out, "", text)
}

// writeLines writes every line followed by a newline, and stops at the first
// error
func writeLines(w io.Writer, lines ...string) error {
	for _, line := range lines {
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// FieldEntry formats a field as `visibility::type::name;`
func FieldEntry(field *symbol.Definition, r color.Renderer) string {
	return r.RenderColor(color.Blue, field.Visibility.Scope()) +
		r.RenderColor(color.Green, "::"+field.Type) +
		"::" + field.Name + ";"
}

// MethodEntry formats a method as `visibility::name(parameters)::returnType`.
// The parameters are joined without a separator
func MethodEntry(method *symbol.Definition, r color.Renderer) string {
	var params strings.Builder
	for _, param := range method.Parameters {
		params.WriteString(param.String())
	}
	returnType := method.Type
	if returnType == "" {
		returnType = "void"
	}
	return r.RenderColor(color.Blue, method.Visibility.Scope()) +
		"::" + method.Name + "(" + params.String() + ")" +
		r.RenderColor(color.Green, "::"+returnType)
}

// LsJavaCommand returns the ls overload for Java files and their members
func LsJavaCommand() *shell.Command {
	return &shell.Command{
		Name:  "ls",
		Topic: "java",
		Help:  "ls [-a] [-l] [paths...]: list the fields and methods of a Java file, -a prints its source",
		Scopes: []resource.Kind{
			resource.KindJavaFile,
			resource.KindJavaField,
			resource.KindJavaMethod,
		},
		Run: lsJava,
	}
}

func lsJava(ctx *shell.Context, args []string) error {
	flags := flag.NewFlagSet("ls", flag.ContinueOnError)
	flags.SetOutput(ctx.Stderr)
	all := flags.BoolP("all", "a", false, "Print the whole source of Java files")
	list := flags.BoolP("list", "l", false, "Long listing format, has no effect")
	if err := flags.Parse(args); err != nil {
		return err
	}

	// Every path is resolved before anything is printed
	paths, err := ctx.ResolveAll(flags.Args())
	if err != nil {
		return err
	}

	// The piped layout is fixed, whatever the configuration
	return NewLsJava(ctx.Columns).Run(ctx.Context, *all, *list, paths, ctx.Out)
}
