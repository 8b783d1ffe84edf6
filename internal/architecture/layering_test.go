package architecture_test

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// The module graph has two layers of rules. Across modules, only the
// input ports and DTOs are a public surface; services, usecases and
// adapters stay private. Within a module, dependencies point inward:
// adapters know ports, usecases know services, domains know nothing.
func TestModuleLayerImports(t *testing.T) {
	t.Parallel()
	fset := token.NewFileSet()
	root := filepath.Join("..", "modules")
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		slash := filepath.ToSlash(path)
		module, layer := moduleAndLayer(slash)
		if module == "" || layer == "" {
			return nil
		}
		node, parseErr := parser.ParseFile(fset, path, nil, parser.ImportsOnly)
		if parseErr != nil {
			return parseErr
		}
		for _, imp := range node.Imports {
			importPath := strings.Trim(imp.Path.Value, `"`)
			if !strings.HasPrefix(importPath, "fitcoach/internal/") {
				continue
			}
			if reason := checkImport(module, layer, importPath); reason != "" {
				t.Fatalf("%s (%s) imports %s: %s", slash, layer, importPath, reason)
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("walk modules: %v", err)
	}
}

var layers = []string{"adapter/in", "adapter/out", "usecase", "service", "domain", "port/in", "port/out", "dto"}

func moduleAndLayer(path string) (string, string) {
	parts := strings.Split(path, "/")
	module := ""
	for i := 0; i < len(parts)-1; i++ {
		if parts[i] == "modules" {
			module = parts[i+1]
			break
		}
	}
	for _, layer := range layers {
		if strings.Contains(path, "/"+layer+"/") {
			return module, layer
		}
	}
	return module, ""
}

func isInputPort(importPath string) bool {
	return strings.Contains(importPath, "/port/in/") || strings.HasSuffix(importPath, "/port/in")
}

func isDTO(importPath string) bool {
	return strings.Contains(importPath, "/dto/") || strings.HasSuffix(importPath, "/dto")
}

func isDomain(importPath string) bool {
	return strings.Contains(importPath, "/domain/") || strings.HasSuffix(importPath, "/domain")
}

// checkImport returns a non-empty violation reason for a forbidden edge.
func checkImport(module, layer, importPath string) string {
	if !strings.Contains(importPath, "/internal/modules/") {
		// Platform packages are open to every layer except domain,
		// which may only reach the shared error sentinels and the
		// cross-module password rule.
		if layer == "domain" &&
			!strings.HasSuffix(importPath, "/platform/errors") &&
			!strings.HasSuffix(importPath, "/platform/password") {
			return "domain logic must stay free of platform plumbing"
		}
		return ""
	}

	if !strings.Contains(importPath, "/internal/modules/"+module+"/") {
		if isInputPort(importPath) || isDTO(importPath) {
			return ""
		}
		return "input ports and DTOs are the only cross-module surface"
	}

	switch layer {
	case "adapter/in":
		if !isInputPort(importPath) && !isDTO(importPath) {
			return "inbound adapters see only input ports and DTOs"
		}
	case "usecase":
		if strings.Contains(importPath, "/adapter/") {
			return "usecases must not reach into adapters"
		}
	case "service":
		if strings.Contains(importPath, "/adapter/") || strings.Contains(importPath, "/usecase/") {
			return "services sit below usecases and adapters"
		}
	case "domain":
		if !isDomain(importPath) && !isDTO(importPath) {
			return "domain packages depend on nothing above them"
		}
	}
	return ""
}
