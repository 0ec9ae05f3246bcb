package parsing

import (
	"context"
	"fmt"

	"github.com/NickyBoy89/javash/symbol"
	log "github.com/sirupsen/logrus"
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"
)

// ErrNoTypeDeclaration is returned for a file that declares no class,
// interface, enum or record
var ErrNoTypeDeclaration = symbol.ErrNoTypeDeclaration

type SourceFile struct {
	Name    string
	Source  []byte
	Tree    *sitter.Tree
	Symbols *symbol.FileScope
}

func (file SourceFile) String() string {
	return fmt.Sprintf("SourceFile { Name: %s, Symbols: %v }", file.Name, file.Symbols)
}

// Parse reads the AST and the symbols of a single Java source file
func Parse(ctx context.Context, name string, source []byte) (*SourceFile, error) {
	file := &SourceFile{Name: name, Source: source}
	if err := file.ParseAST(ctx); err != nil {
		return nil, err
	}
	if _, err := file.ParseSymbols(); err != nil {
		return nil, err
	}
	return file, nil
}

// NewParser returns a tree-sitter parser for the Java language
func NewParser() *sitter.Parser {
	parser := sitter.NewParser()
	parser.SetLanguage(java.GetLanguage())
	return parser
}

func (file *SourceFile) ParseAST(ctx context.Context) error {
	tree, err := NewParser().ParseCtx(ctx, nil, file.Source)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", file.Name, err)
	}

	if tree.RootNode().HasError() {
		log.WithFields(log.Fields{
			"file": file.Name,
		}).Warn("Source contains syntax errors")
	}

	file.Tree = tree
	return nil
}

// Root returns the root node of the parsed AST
func (file *SourceFile) Root() *sitter.Node {
	if file.Tree == nil {
		return nil
	}
	return file.Tree.RootNode()
}

func (file *SourceFile) ParseSymbols() (*symbol.FileScope, error) {
	symbols, err := symbol.ExtractDefinitions(file.Root(), file.Source)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file.Name, err)
	}
	log.WithFields(log.Fields{
		"file":    file.Name,
		"class":   symbols.BaseClass.Class.Name,
		"fields":  len(symbols.BaseClass.Fields),
		"methods": len(symbols.BaseClass.Methods),
	}).Debug("Extracted symbols")
	file.Symbols = symbols
	return symbols, nil
}
