package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidModulePath(t *testing.T) {
	valid := []string{
		"example.com/hello",
		"github.com/octoberswimmer/demo",
		"hello",
		"my-app.dev/forms_v2",
	}
	for _, path := range valid {
		if !validModulePath(path) {
			t.Errorf("validModulePath(%q) = false, want true", path)
		}
	}
	invalid := []string{
		"",
		"   ",
		"has space/app",
		"trailing/",
		"/leading",
		"double//slash",
	}
	for _, path := range invalid {
		if validModulePath(path) {
			t.Errorf("validModulePath(%q) = true, want false", path)
		}
	}
}

func TestScaffoldApp(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "hello")
	if err := scaffoldApp(dir, "example.com/hello", "Hello App"); err != nil {
		t.Fatalf("scaffoldApp error: %v", err)
	}

	mainGo := readFile(t, filepath.Join(dir, "main.go"))
	if !strings.Contains(mainGo, `formic.SetTitle("Hello App")`) {
		t.Errorf("main.go should set the page title; got %q", mainGo)
	}
	if !strings.Contains(mainGo, "github.com/octoberswimmer/formic/forms") {
		t.Errorf("main.go should import the forms package; got %q", mainGo)
	}

	goMod := readFile(t, filepath.Join(dir, "go.mod"))
	if !strings.Contains(goMod, "module example.com/hello") {
		t.Errorf("go.mod should declare the module; got %q", goMod)
	}

	config := readFile(t, filepath.Join(dir, configFile))
	if !strings.Contains(config, "port: 8000") || !strings.Contains(config, "app: .") {
		t.Errorf("formic.yaml should carry serve defaults; got %q", config)
	}

	css := readFile(t, filepath.Join(dir, "app.css"))
	if !strings.Contains(css, ".form-control") {
		t.Errorf("app.css should style form controls; got %q", css)
	}
}

func TestScaffoldAppRefusesExistingModule(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "go.mod"), "module taken\n")
	if err := scaffoldApp(dir, "example.com/hello", "Hello"); err == nil {
		t.Fatal("expected error scaffolding over an existing module")
	}
}

func TestRunNewWithFlags(t *testing.T) {
	newModule = "example.com/demo"
	newTitle = "Demo"
	defer func() {
		newModule = ""
		newTitle = ""
	}()

	dir := filepath.Join(t.TempDir(), "demo")
	if err := runNew(newCmd, []string{dir}); err != nil {
		t.Fatalf("runNew error: %v", err)
	}
	if !strings.Contains(readFile(t, filepath.Join(dir, "main.go")), `formic.SetTitle("Demo")`) {
		t.Error("scaffolded app should use the title flag")
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}
