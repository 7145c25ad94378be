package internalcheck

import (
	"fmt"
	"go/ast"
	"go/types"
	"strings"
	"testing"

	"golang.org/x/tools/go/packages"
)

// TestNoPanicInLibrary checks that the library reports failures as errors.
// Tests and commands are not loaded.
func TestNoPanicInLibrary(t *testing.T) {
	cfg := &packages.Config{
		Mode: packages.NeedSyntax | packages.NeedTypes | packages.NeedTypesInfo | packages.NeedFiles | packages.NeedName,
	}

	pkgs, err := packages.Load(cfg, modulePath+"/pkg/...")
	if err != nil {
		t.Fatalf("load packages: %v", err)
	}

	var findings []string

	for _, pkg := range pkgs {
		for _, file := range pkg.Syntax {
			ast.Inspect(file, func(n ast.Node) bool {
				call, ok := n.(*ast.CallExpr)
				if !ok {
					return true
				}
				ident, ok := call.Fun.(*ast.Ident)
				if !ok {
					return true
				}
				if _, builtin := pkg.TypesInfo.Uses[ident].(*types.Builtin); builtin && ident.Name == "panic" {
					findings = append(findings, fmt.Sprintf("%s: return an error instead of panicking", pkg.Fset.Position(call.Pos())))
				}
				return true
			})
		}
	}

	if len(findings) > 0 {
		t.Fatalf("panic policy violation:\n%s", strings.Join(findings, "\n"))
	}
}
