package main

import (
	"context"
	"embed"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/flosch/pongo2/v6"
	"github.com/spf13/cobra"

	"github.com/octoberswimmer/formic/field"
	"github.com/octoberswimmer/formic/prompt"
	"github.com/octoberswimmer/formic/validate"
)

// new flags
var (
	newModule string
	newTitle  string
)

// new command
var newCmd = &cobra.Command{
	Use:   "new [dir]",
	Short: "Scaffold a new formic app",
	Long: `Scaffold a new formic app.

Prompts for the module path and page title unless --module and --title are
given. The app directory defaults to the last element of the module path.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNew,
}

func init() {
	newCmd.Flags().StringVar(&newModule, "module", "", "Module path for the new app")
	newCmd.Flags().StringVar(&newTitle, "title", "", "Page title for the new app")
	rootCmd.AddCommand(newCmd)
}

//go:embed templates/*.tpl
var scaffoldTemplates embed.FS

var scaffoldSet = pongo2.NewSet("scaffold", pongo2.NewFSLoader(scaffoldTemplates))

// scaffoldFiles maps bundled templates to their destination in the new app.
var scaffoldFiles = []struct {
	template string
	dest     string
}{
	{"templates/main.go.tpl", "main.go"},
	{"templates/go.mod.tpl", "go.mod"},
	{"templates/formic.yaml.tpl", "formic.yaml"},
	{"templates/app.css.tpl", "app.css"},
}

var (
	modulePathRe    = regexp.MustCompile(`[A-Za-z0-9._-]+(?:/[A-Za-z0-9._-]+)*`)
	validModulePath = validate.All(validate.NonEmpty, validate.Match(modulePathRe))
)

func runNew(cmd *cobra.Command, args []string) error {
	module := newModule
	title := newTitle
	var err error

	if module == "" {
		if module, err = askModulePath(cmd.Context()); err != nil {
			return err
		}
	} else if !validModulePath(module) {
		return fmt.Errorf("invalid module path: %s", module)
	}
	if title == "" {
		if title, err = askTitle(cmd.Context(), path.Base(module)); err != nil {
			return err
		}
	}

	dir := path.Base(module)
	if len(args) > 0 {
		dir = args[0]
	}
	if err := scaffoldApp(dir, module, title); err != nil {
		return err
	}

	fmt.Printf("Created formic app in %s\n", dir)
	fmt.Println("Next steps:")
	fmt.Printf("  cd %s\n", dir)
	fmt.Println("  go mod tidy")
	fmt.Println("  formic serve")
	return nil
}

func askModulePath(ctx context.Context) (string, error) {
	m, err := prompt.Field(ctx, field.New(validModulePath),
		prompt.WithMessage("Module path"),
		prompt.WithHelp("Import path for the new app, e.g. example.com/hello"),
		prompt.WithErrorMessage("module path must look like example.com/hello"),
	)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(m.Value()), nil
}

func askTitle(ctx context.Context, defaultTitle string) (string, error) {
	m, err := prompt.Field(ctx, field.New(validate.NonEmpty),
		prompt.WithMessage("App title"),
		prompt.WithDefault(defaultTitle),
		prompt.WithErrorMessage("title must not be empty"),
	)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(m.Value()), nil
}

// scaffoldApp renders the bundled templates into dir.
func scaffoldApp(dir, module, title string) error {
	if fileExists(filepath.Join(dir, "go.mod")) {
		return fmt.Errorf("%s already holds a Go module", dir)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	ctx := pongo2.Context{
		"module": module,
		"title":  title,
	}
	for _, f := range scaffoldFiles {
		if err := renderScaffoldFile(f.template, filepath.Join(dir, f.dest), ctx); err != nil {
			return err
		}
	}
	return nil
}

func renderScaffoldFile(name, dst string, ctx pongo2.Context) error {
	tmpl, err := scaffoldSet.FromFile(name)
	if err != nil {
		return fmt.Errorf("load template %s: %w", name, err)
	}
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if err := tmpl.ExecuteWriter(ctx, out); err != nil {
		out.Close()
		return fmt.Errorf("render %s: %w", dst, err)
	}
	return out.Close()
}
