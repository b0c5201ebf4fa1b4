package internalcheck

import (
	"fmt"
	"go/ast"
	"strings"
	"testing"

	"golang.org/x/tools/go/packages"
)

// The production clearing strategy only works if the bulk clear routine
// is reached exclusively through the opaque function reference: a direct
// call would let the compiler inline the stores and prove them dead once
// the block is freed. This test fails on any direct invocation.
func TestClearRoutineNeverCalledDirectly(t *testing.T) {
	cfg := &packages.Config{
		Mode: packages.NeedSyntax | packages.NeedTypes | packages.NeedTypesInfo | packages.NeedFiles | packages.NeedName,
	}

	pkgs, err := packages.Load(cfg, "github.com/zeromem/zalloc-go/internal/wipe")
	if err != nil {
		t.Fatalf("load package: %v", err)
	}

	var findings []string

	for _, pkg := range pkgs {
		fset := pkg.Fset
		typesInfo := pkg.TypesInfo

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

				obj := typesInfo.Uses[ident]
				if obj == nil || obj.Name() != "clearBytes" {
					return true
				}
				if obj.Pkg() == nil || obj.Pkg().Path() != pkg.PkgPath {
					return true
				}

				pos := fset.Position(call.Pos())
				findings = append(findings, fmt.Sprintf(
					"%s: clearBytes called directly; route the clear through the wiper reference", pos))
				return true
			})
		}
	}

	if len(findings) > 0 {
		t.Fatalf("anti-elision policy violation:\n%s", strings.Join(findings, "\n"))
	}
}
