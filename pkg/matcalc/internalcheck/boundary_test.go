package internalcheck

import (
	"strings"
	"testing"

	"golang.org/x/tools/go/packages"
)

const (
	modulePath   = "github.com/matsci/matcalc-go"
	bindingsPath = modulePath + "/internal/bindings"
	matcalcPath  = modulePath + "/pkg/matcalc"
)

func loadModulePackages(t *testing.T) []*packages.Package {
	t.Helper()
	cfg := &packages.Config{
		Mode:  packages.NeedName | packages.NeedImports | packages.NeedFiles,
		Tests: false,
	}
	pkgs, err := packages.Load(cfg, modulePath+"/...")
	if err != nil {
		t.Fatalf("load packages: %v", err)
	}
	if len(pkgs) == 0 {
		t.Fatal("no packages loaded")
	}
	return pkgs
}

// The purego import is the foreign boundary. Keeping it inside
// internal/bindings means every other package stays testable without a
// native library and portable to the stub platforms.
func TestPuregoConfinedToBindings(t *testing.T) {
	for _, pkg := range loadModulePackages(t) {
		for imp := range pkg.Imports {
			if !strings.HasPrefix(imp, "github.com/ebitengine/purego") {
				continue
			}
			if pkg.PkgPath != bindingsPath {
				t.Errorf("package %s imports %s; only %s may", pkg.PkgPath, imp, bindingsPath)
			}
		}
	}
}

// Commands, examples, and everything downstream must use the public session
// API rather than reaching into the bindings layer.
func TestBindingsImportedOnlyByMatcalc(t *testing.T) {
	for _, pkg := range loadModulePackages(t) {
		if pkg.PkgPath == bindingsPath || pkg.PkgPath == matcalcPath {
			continue
		}
		if _, ok := pkg.Imports[bindingsPath]; ok {
			t.Errorf("package %s imports %s; only %s may", pkg.PkgPath, bindingsPath, matcalcPath)
		}
	}
}
