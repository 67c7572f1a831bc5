package arch_test

import (
	"go/ast"
	"go/parser"
	"go/token"
	"path/filepath"
	"strings"
	"testing"
)

// allowedGlobals lists package-level var names that are intentionally global
// but don't match the automated detection heuristics. Each entry documents why
// it is acceptable.
var allowedGlobals = map[string][]string{}

// allowedGlobalPrefixes lists name prefixes for which all vars in the given
// package are treated as constant-like. This is used for packages that follow
// a convention of naming their constant-like globals with a common prefix
// (e.g., TUI lipgloss styles and color definitions).
var allowedGlobalPrefixes = map[string][]string{
	// tui: lipgloss styles (styleXxx) and color definitions (colorXxx) are
	// effectively immutable after init and are standard patterns in
	// Bubble Tea / lipgloss applications.
	"tui": {"style", "color"},
}

// TestNoMutableGlobalState scans all internal packages for package-level var
// declarations and flags any that are not in the allowed categories:
//   - error sentinels (errors.New / fmt.Errorf)
//   - compile-time interface checks (var _ T = ...)
//   - regexp.MustCompile
//   - sync primitives (sync.Once, sync.Mutex, etc.) and atomic types
//   - simple literal values (string, int, bool, float)
//   - composite literals (array, slice, map, struct literals)
//   - //go:embed file contents
//   - explicitly allowlisted names or prefixes
func TestNoMutableGlobalState(t *testing.T) {
	t.Parallel()

	dir := internalDirPath(t)
	pkgs := internalPackages(t)

	for _, pkg := range pkgs {
		t.Run(pkg, func(t *testing.T) {
			t.Parallel()

			pkgDir := filepath.Join(dir, pkg)
			files := goFilesIn(t, pkgDir)
			allowed := makeAllowSet(pkg)
			prefixes := allowedGlobalPrefixes[pkg]

			fset := token.NewFileSet()
			for _, filePath := range files {
				node, err := parser.ParseFile(fset, filePath, nil, parser.ParseComments)
				if err != nil {
					t.Fatalf("parsing %s: %v", filePath, err)
				}

				for _, decl := range node.Decls {
					gd, ok := decl.(*ast.GenDecl)
					if !ok || gd.Tok != token.VAR || isEmbedded(gd) {
						continue
					}
					for _, spec := range gd.Specs {
						vs, ok := spec.(*ast.ValueSpec)
						if !ok {
							continue
						}
						checkVarSpec(t, vs, allowed, prefixes, filePath)
					}
				}
			}
		})
	}
}

// isEmbedded reports whether the declaration carries a //go:embed directive.
// Embedded file contents are read-only data filled in by the compiler.
func isEmbedded(gd *ast.GenDecl) bool {
	if gd.Doc == nil {
		return false
	}
	for _, c := range gd.Doc.List {
		if strings.HasPrefix(c.Text, "//go:embed ") {
			return true
		}
	}
	return false
}

// checkVarSpec checks a single var spec against the allowed patterns.
func checkVarSpec(t *testing.T, vs *ast.ValueSpec, allowed map[string]bool, prefixes []string, filePath string) {
	t.Helper()

	for i, name := range vs.Names {
		varName := name.Name

		// Blank identifier: compile-time interface check.
		if varName == "_" {
			continue
		}

		if allowed[varName] {
			continue
		}

		if hasAllowedPrefix(varName, prefixes) {
			continue
		}

		if constantLike(vs, i) {
			continue
		}

		typeName := typeString(vs.Type)
		t.Errorf("mutable global state in %s: var %s (type: %s); use dependency injection or move to a function",
			filepath.Base(filePath), varName, typeName)
	}
}

// makeAllowSet builds a set of allowed var names for a package.
func makeAllowSet(pkg string) map[string]bool {
	names := allowedGlobals[pkg]
	s := make(map[string]bool, len(names))
	for _, n := range names {
		s[n] = true
	}
	return s
}

// hasAllowedPrefix returns true if varName starts with any of the given prefixes.
func hasAllowedPrefix(varName string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(varName, p) {
			return true
		}
	}
	return false
}

// isErrorSentinel returns true if the var declaration looks like an error
// sentinel: either the type annotation is `error`, or the initializer calls
// `errors.New(...)` or `fmt.Errorf(...)`.
func isErrorSentinel(typeExpr ast.Expr, val ast.Expr) bool {
	// Check type annotation.
	if ident, ok := typeExpr.(*ast.Ident); ok && ident.Name == "error" {
		return true
	}

	if val == nil {
		return false
	}

	call, ok := val.(*ast.CallExpr)
	if !ok {
		return false
	}

	sel, ok := call.Fun.(*ast.SelectorExpr)
	if !ok {
		return false
	}

	pkgIdent, ok := sel.X.(*ast.Ident)
	if !ok {
		return false
	}

	return (pkgIdent.Name == "errors" && sel.Sel.Name == "New") ||
		(pkgIdent.Name == "fmt" && sel.Sel.Name == "Errorf")
}

// isRegexpCompile returns true if the initializer is regexp.MustCompile(...).
func isRegexpCompile(val ast.Expr) bool {
	if val == nil {
		return false
	}
	call, ok := val.(*ast.CallExpr)
	if !ok {
		return false
	}
	sel, ok := call.Fun.(*ast.SelectorExpr)
	if !ok {
		return false
	}
	pkgIdent, ok := sel.X.(*ast.Ident)
	if !ok {
		return false
	}
	return pkgIdent.Name == "regexp" && sel.Sel.Name == "MustCompile"
}

// isSyncOrAtomicType returns true if the type expression is a sync or
// sync/atomic primitive (sync.Once, sync.Mutex, sync.RWMutex, sync.Pool,
// sync.Map, atomic.Int32, etc.).
func isSyncOrAtomicType(typeExpr ast.Expr) bool {
	if typeExpr == nil {
		return false
	}
	sel, ok := typeExpr.(*ast.SelectorExpr)
	if !ok {
		return false
	}
	pkgIdent, ok := sel.X.(*ast.Ident)
	if !ok {
		return false
	}
	return pkgIdent.Name == "sync" || pkgIdent.Name == "atomic"
}

// isSimpleLiteral returns true if the initializer is a basic literal
// (string, int, float, char, imaginary).
func isSimpleLiteral(val ast.Expr) bool {
	if val == nil {
		return false
	}
	_, ok := val.(*ast.BasicLit)
	return ok
}

// isCompositeLiteral returns true if the initializer is a composite literal
// (array, slice, map, or struct literal initialized inline). These are
// constant-like lookup tables or configuration data.
func isCompositeLiteral(val ast.Expr) bool {
	if val == nil {
		return false
	}
	_, ok := val.(*ast.CompositeLit)
	return ok
}

// typeString returns a human-readable string for a type expression.
// Returns "<inferred>" when the type is implicit.
func typeString(expr ast.Expr) string {
	if expr == nil {
		return "<inferred>"
	}
	switch t := expr.(type) {
	case *ast.Ident:
		return t.Name
	case *ast.SelectorExpr:
		if x, ok := t.X.(*ast.Ident); ok {
			return x.Name + "." + t.Sel.Name
		}
	case *ast.StarExpr:
		return "*" + typeString(t.X)
	case *ast.ArrayType:
		if t.Len != nil {
			return "[...]" + typeString(t.Elt)
		}
		return "[]" + typeString(t.Elt)
	case *ast.MapType:
		return "map[" + typeString(t.Key) + "]" + typeString(t.Value)
	case *ast.InterfaceType:
		return "interface{}"
	}
	return "<complex>"
}

// constantLike reports whether the i-th name in vs passes one of the
// value heuristics used by TestNoMutableGlobalState.
func constantLike(vs *ast.ValueSpec, i int) bool {
	var val ast.Expr
	if i < len(vs.Values) {
		val = vs.Values[i]
	}
	return isErrorSentinel(vs.Type, val) ||
		isRegexpCompile(val) ||
		isSyncOrAtomicType(vs.Type) ||
		isSimpleLiteral(val) ||
		isCompositeLiteral(val)
}

// TestGlobalStateHeuristics runs the detection heuristics over synthetic
// sources shaped like the globals this repo declares, plus the make()
// forms that must always be flagged.
func TestGlobalStateHeuristics(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		src     string
		allowed bool
	}{
		{"sentinel", `package p; import "errors"; var ErrUnknownRing = errors.New("unknown ring")`, true},
		{"wrapped sentinel", `package p; import "fmt"; var ErrRange = fmt.Errorf("range: %w", nil)`, true},
		{"csi regexp", `package p; import "regexp"; var csi = regexp.MustCompile("\x1b\\[[0-9;]*[A-Za-z]")`, true},
		{"mutex", `package p; import "sync"; var mu sync.Mutex`, true},
		{"threshold", `package p; var threshold = 50`, true},
		{"pattern catalog", `package p; var patterns = []string{"Efficiency", "Clarity"}`, true},
		{"stage table", `package p; var info = map[int]string{1: "empathy"}`, true},
		{"make map", `package p; var m = make(map[string]string)`, false},
		{"make slice", `package p; var s = make([]byte, 1024)`, false},
		{"make chan", `package p; var ch = make(chan int)`, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			node, err := parser.ParseFile(token.NewFileSet(), "test.go", tc.src, 0)
			if err != nil {
				t.Fatalf("parsing: %v", err)
			}

			seen := 0
			for _, decl := range node.Decls {
				gd, ok := decl.(*ast.GenDecl)
				if !ok || gd.Tok != token.VAR {
					continue
				}
				for _, spec := range gd.Specs {
					vs := spec.(*ast.ValueSpec)
					for i, name := range vs.Names {
						seen++
						if got := constantLike(vs, i); got != tc.allowed {
							t.Errorf("var %q allowed = %v, want %v", name.Name, got, tc.allowed)
						}
					}
				}
			}
			if seen == 0 {
				t.Fatal("no var declarations parsed")
			}
		})
	}
}

// TestEmbeddedVarsAreExempt checks that //go:embed vars are skipped, which
// content and orbit rely on for their bundled TOML.
func TestEmbeddedVarsAreExempt(t *testing.T) {
	t.Parallel()

	src := "package p\n\nimport _ \"embed\"\n\n//go:embed pages.toml\nvar pagesTOML []byte\n\nvar plain []byte\n"
	node, err := parser.ParseFile(token.NewFileSet(), "embed.go", src, parser.ParseComments)
	if err != nil {
		t.Fatalf("parsing: %v", err)
	}

	var got []bool
	for _, decl := range node.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok || gd.Tok != token.VAR {
			continue
		}
		got = append(got, isEmbedded(gd))
	}
	if len(got) != 2 || !got[0] || got[1] {
		t.Errorf("isEmbedded = %v, want [true false]", got)
	}
}
