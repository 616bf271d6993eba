package main

import (
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// Component is one donburi component or tag variable.
type Component struct {
	Name string
	// Type is the data type name, empty for tags.
	Type string
	// Alias is the type Type stands for when it is declared as an alias.
	Alias  string
	Fields []string
	// Found is false when the data type was not declared in the scanned tree.
	Found bool
	Pos   token.Position
}

func (c Component) IsTag() bool { return c.Type == "" }

// Scan walks dir and collects the component types declared with
// donburi.NewComponentType and donburi.NewTag, resolving each data type to
// its struct fields. Test files and directories starting with "_" or "."
// are skipped.
func Scan(dir string) ([]Component, error) {
	fset := token.NewFileSet()
	var files []*ast.File

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := d.Name()
		if d.IsDir() {
			if path != dir && (strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".")) {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
			return nil
		}
		f, err := parser.ParseFile(fset, path, nil, parser.SkipObjectResolution)
		if err != nil {
			return err
		}
		files = append(files, f)
		return nil
	})
	if err != nil {
		return nil, err
	}

	specs := make(map[string]*ast.TypeSpec)
	var comps []Component
	for _, f := range files {
		for _, decl := range f.Decls {
			gen, ok := decl.(*ast.GenDecl)
			if !ok {
				continue
			}
			for _, spec := range gen.Specs {
				switch s := spec.(type) {
				case *ast.TypeSpec:
					specs[s.Name.Name] = s
				case *ast.ValueSpec:
					comps = append(comps, componentVars(fset, s)...)
				}
			}
		}
	}

	for i := range comps {
		resolve(&comps[i], specs)
	}
	sort.SliceStable(comps, func(i, j int) bool {
		if comps[i].IsTag() != comps[j].IsTag() {
			return !comps[i].IsTag()
		}
		return comps[i].Name < comps[j].Name
	})
	return comps, nil
}

func componentVars(fset *token.FileSet, s *ast.ValueSpec) []Component {
	var out []Component
	for i, v := range s.Values {
		if i >= len(s.Names) {
			break
		}
		call, ok := v.(*ast.CallExpr)
		if !ok {
			continue
		}
		c := Component{Name: s.Names[i].Name, Pos: fset.Position(s.Names[i].Pos())}
		switch fn := call.Fun.(type) {
		case *ast.IndexExpr:
			if !isDonburi(fn.X, "NewComponentType") {
				continue
			}
			c.Type = types.ExprString(fn.Index)
		case *ast.SelectorExpr:
			if !isDonburi(fn, "NewTag") {
				continue
			}
			c.Found = true
		default:
			continue
		}
		out = append(out, c)
	}
	return out
}

func isDonburi(expr ast.Expr, fn string) bool {
	sel, ok := expr.(*ast.SelectorExpr)
	if !ok || sel.Sel.Name != fn {
		return false
	}
	pkg, ok := sel.X.(*ast.Ident)
	return ok && pkg.Name == "donburi"
}

// resolve follows aliases and named types until it reaches a struct.
func resolve(c *Component, specs map[string]*ast.TypeSpec) {
	if c.IsTag() {
		return
	}
	name := c.Type
	for depth := 0; depth < 8; depth++ {
		spec, ok := specs[name]
		if !ok {
			return
		}
		st, ok := spec.Type.(*ast.StructType)
		if ok {
			c.Found = true
			c.Fields = structFields(st)
			return
		}
		next := types.ExprString(spec.Type)
		if c.Alias == "" {
			c.Alias = next
		}
		if _, known := specs[next]; !known {
			// A named non-struct type, e.g. a func or slice.
			c.Found = true
			return
		}
		name = next
	}
}

func structFields(st *ast.StructType) []string {
	var out []string
	for _, field := range st.Fields.List {
		typ := types.ExprString(field.Type)
		if len(field.Names) == 0 {
			out = append(out, typ)
			continue
		}
		names := make([]string, len(field.Names))
		for i, n := range field.Names {
			names[i] = n.Name
		}
		out = append(out, strings.Join(names, ", ")+" "+typ)
	}
	return out
}
