package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/gorilla/mux"
	"github.com/mattn/go-isatty"
	"github.com/pkg/browser"
	"github.com/spf13/cobra"
	"golang.org/x/tools/go/packages"
)

// serve flags
var (
	servePort    int
	serveNoOpen  bool
	serveEnvFile string
)

// serve command
var serveCmd = &cobra.Command{
	Use:   "serve [dir]",
	Short: "Build and serve a formic app locally",
	Long: `Build and serve a formic app locally.

The app is compiled to WebAssembly and served with live rebuild on source
changes. Settings come from flags, FORMIC_* environment variables, and
formic.yaml, in that order of precedence.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 8000, "Port to serve on")
	serveCmd.Flags().BoolVar(&serveNoOpen, "no-open", false, "Do not open the app in a browser")
	serveCmd.Flags().StringVar(&serveEnvFile, "env-file", "", "Env file to load before serving")
	rootCmd.AddCommand(serveCmd)
}

// indexHTML is the page served for the app root. It loads the WebAssembly
// bundle and hands control to the formic program.
const indexHTML = `<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <title>formic</title>
    <link rel="stylesheet" href="app.css">
    <script src="wasm_exec.js"></script>
    <script>
        const go = new Go();
        WebAssembly.instantiateStreaming(fetch("bundle.wasm"), go.importObject).then((result) => {
            go.run(result.instance);
        });
    </script>
</head>
<body>
</body>
</html>`

// appServer serves a built formic app and swaps in fresh build directories as
// the watcher rebuilds.
type appServer struct {
	appDir string

	mu       sync.RWMutex
	buildDir string
}

func (s *appServer) currentBuildDir() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.buildDir
}

func (s *appServer) swapBuildDir(dir string) {
	s.mu.Lock()
	old := s.buildDir
	s.buildDir = dir
	s.mu.Unlock()
	if old != "" {
		os.RemoveAll(old)
	}
}

// router wires the app routes.
func (s *appServer) router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/bundle.wasm", s.wasm)
	r.HandleFunc("/wasm_exec.js", s.wasmExec)
	r.HandleFunc("/app.css", s.stylesheet)
	r.HandleFunc("/settings.json", s.settings)
	r.HandleFunc("/", s.index)
	return r
}

// wasm serves the bundle.wasm file from the current build directory.
func (s *appServer) wasm(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, filepath.Join(s.currentBuildDir(), "bundle.wasm"))
}

// wasmExec serves the wasm_exec.js file from the current build directory.
func (s *appServer) wasmExec(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, filepath.Join(s.currentBuildDir(), "wasm_exec.js"))
}

// stylesheet serves app.css from the app directory, so style edits show up
// on reload without a rebuild. Apps without a stylesheet get an empty one.
func (s *appServer) stylesheet(w http.ResponseWriter, r *http.Request) {
	path := filepath.Join(s.appDir, "app.css")
	if !fileExists(path) {
		w.Header().Set("Content-Type", "text/css; charset=utf-8")
		return
	}
	http.ServeFile(w, r, path)
}

// index serves the indexHTML template directly.
func (s *appServer) index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(indexHTML))
}

// settings serves FORMIC_APP_* environment values as JSON so apps can read
// their dev-mode settings with a fetch.
func (s *appServer) settings(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(appSettings(os.Environ())); err != nil {
		http.Error(w, "Failed to encode settings", http.StatusInternalServerError)
	}
}

// appSettings collects FORMIC_APP_* variables from environ, keyed by the name
// with the prefix stripped.
func appSettings(environ []string) map[string]string {
	const prefix = "FORMIC_APP_"
	settings := map[string]string{}
	for _, kv := range environ {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(name, prefix) {
			continue
		}
		if key := strings.TrimPrefix(name, prefix); key != "" {
			settings[key] = value
		}
	}
	return settings
}

// runServe builds the WASM bundle and serves the app with auto-rebuild.
func runServe(cmd *cobra.Command, args []string) error {
	flags := flagOverrides{
		port:    servePort,
		portSet: cmd.Flags().Changed("port"),
		noOpen:  serveNoOpen,
		envFile: serveEnvFile,
	}
	if len(args) > 0 {
		flags.app = args[0]
	}
	cfg, err := resolveServeConfig(".", flags)
	if err != nil {
		return err
	}

	info, err := os.Stat(cfg.App)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("invalid app directory: %s", cfg.App)
	}
	if err := validateMainPackage(cfg.App); err != nil {
		return err
	}

	fmt.Printf("Building WASM bundle in %s...\n", cfg.App)
	buildDir, err := buildWASM(cfg.App)
	if err != nil {
		return fmt.Errorf("error building WASM: %w", err)
	}

	srv := &appServer{appDir: cfg.App}
	srv.swapBuildDir(buildDir)
	go watchAndRebuild(cfg.App, srv)

	actualPort, listener, err := findFreePort(cfg.Port)
	if err != nil {
		return fmt.Errorf("error finding free port: %w", err)
	}
	defer listener.Close()

	fmt.Printf("Serving formic app on port %d (watching %s)...\n", actualPort, cfg.App)

	server := &http.Server{Handler: srv.router()}
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Serve(listener)
	}()

	if cfg.Open && stdoutIsTerminal() {
		url := fmt.Sprintf("http://localhost:%d", actualPort)
		go func() {
			// Give the server a moment to accept connections.
			time.Sleep(100 * time.Millisecond)
			if err := browser.OpenURL(url); err != nil {
				fmt.Fprintf(os.Stderr, "Failed to open browser: %v\n", err)
			}
		}()
	}

	return <-serverErr
}

// stdoutIsTerminal reports whether stdout is attached to a terminal.
func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// validateMainPackage checks that appDir holds a package main.
func validateMainPackage(appDir string) error {
	env := os.Environ()
	if shouldDisableWorkspace(appDir) {
		env = append(env, "GOWORK=off")
	}
	cfg := &packages.Config{
		Mode: packages.NeedName,
		Dir:  appDir,
		Env:  env,
	}
	pkgs, _ := packages.Load(cfg, ".")
	if len(pkgs) == 0 || pkgs[0].Name != "main" {
		return fmt.Errorf("serve directory %s is not package main", appDir)
	}
	return nil
}

// buildWASM compiles the Go app in appDir to WebAssembly and prepares assets.
func buildWASM(appDir string) (string, error) {
	buildDir, err := os.MkdirTemp("", "formic-build-*")
	if err != nil {
		return "", err
	}
	outWasm := filepath.Join(buildDir, "bundle.wasm")
	cmd := exec.Command("go", "build", "-o", outWasm)

	env := append(os.Environ(), "GOOS=js", "GOARCH=wasm")
	if shouldDisableWorkspace(appDir) {
		env = append(env, "GOWORK=off")
		fmt.Println("Note: Disabling go.work for standalone module build")
	}
	cmd.Env = env

	absPath, err := filepath.Abs(appDir)
	if err != nil {
		return "", fmt.Errorf("failed to set app dir: %w", err)
	}
	cmd.Dir = absPath
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return "", err
	}

	// copy wasm_exec.js from the Go SDK
	wasmExecSrc := filepath.Join(runtime.GOROOT(), "lib", "wasm", "wasm_exec.js")
	wasmExecDst := filepath.Join(buildDir, "wasm_exec.js")
	if err := copyFile(wasmExecSrc, wasmExecDst); err != nil {
		return "", err
	}
	return buildDir, nil
}

// findGoWork searches for a go.work file starting from dir and walking up.
func findGoWork(dir string) string {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return ""
	}
	for {
		workFile := filepath.Join(absDir, "go.work")
		if _, err := os.Stat(workFile); err == nil {
			return workFile
		}
		parent := filepath.Dir(absDir)
		if parent == absDir {
			break // reached root
		}
		absDir = parent
	}
	return ""
}

// parseWorkspaceModules parses a go.work file and returns the module
// directories it uses, resolved relative to the workspace file.
func parseWorkspaceModules(workFile string) ([]string, error) {
	file, err := os.Open(workFile)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var modules []string
	scanner := bufio.NewScanner(file)
	inUseBlock := false

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if strings.HasPrefix(line, "use (") {
			inUseBlock = true
			continue
		}
		if strings.HasPrefix(line, "use ") && !strings.Contains(line, "(") {
			module := strings.TrimSpace(strings.TrimPrefix(line, "use"))
			if !strings.HasPrefix(module, "//") && module != "" {
				modules = append(modules, module)
			}
			continue
		}
		if inUseBlock {
			if strings.HasPrefix(line, ")") {
				inUseBlock = false
				continue
			}
			if strings.HasPrefix(line, "//") || line == "" {
				continue
			}
			modules = append(modules, line)
		}
	}

	workDir := filepath.Dir(workFile)
	for i, module := range modules {
		if !filepath.IsAbs(module) {
			modules[i] = filepath.Join(workDir, module)
		}
	}
	return modules, scanner.Err()
}

// shouldDisableWorkspace reports whether GOWORK should be disabled when
// building targetDir. Building a module that is not part of the enclosing
// workspace fails unless the workspace is turned off.
func shouldDisableWorkspace(targetDir string) bool {
	workFile := findGoWork(targetDir)
	if workFile == "" {
		return false
	}
	modules, err := parseWorkspaceModules(workFile)
	if err != nil {
		// If the workspace cannot be parsed, leave it enabled.
		return false
	}
	absTarget, err := filepath.Abs(targetDir)
	if err != nil {
		return false
	}
	for _, module := range modules {
		absModule, err := filepath.Abs(module)
		if err != nil {
			continue
		}
		if absTarget == absModule {
			return false
		}
	}
	return true
}

// findFreePort finds and reserves a free port, returning both the port and
// the listener bound to it.
func findFreePort(preferredPort int) (int, net.Listener, error) {
	if preferredPort > 0 {
		ln, err := net.Listen("tcp", fmt.Sprintf(":%d", preferredPort))
		if err == nil {
			return preferredPort, ln, nil
		}
		fmt.Printf("Port %d is in use, finding alternative...\n", preferredPort)
	}
	ln, err := net.Listen("tcp", ":0")
	if err != nil {
		return 0, nil, err
	}
	return ln.Addr().(*net.TCPAddr).Port, ln, nil
}

// copyFile copies a file from src to dst, creating parent directories.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return err
	}
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()
	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}

// watchAndRebuild watches Go source files and rebuilds the WASM bundle on
// change, swapping the fresh build into the server.
func watchAndRebuild(appDir string, srv *appServer) {
	err := watchFiles(appDir, func() error {
		fmt.Println("Rebuilding...")
		buildDir, err := buildWASM(appDir)
		if err != nil {
			return fmt.Errorf("error rebuilding WASM: %w", err)
		}
		srv.swapBuildDir(buildDir)
		fmt.Println("Rebuild complete")
		return nil
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Watch error: %v\n", err)
	}
}

// watchFiles watches Go source files under the app and its local module
// directories and calls onRebuild, debounced, when they change.
func watchFiles(appDir string, onRebuild func() error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("error setting up file watcher: %w", err)
	}
	defer watcher.Close()

	// Determine local module directories via `go list`, skipping the module
	// cache.
	gomodcacheBytes, err := exec.Command("go", "env", "GOMODCACHE").Output()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error getting GOMODCACHE: %v\n", err)
	}
	gomodcache := strings.TrimSpace(string(gomodcacheBytes))

	listCmd := exec.Command("go", "list", "-C", appDir, "-m", "-mod=readonly", "-f", "{{.Dir}}", "all")
	env := os.Environ()
	if shouldDisableWorkspace(appDir) {
		env = append(env, "GOWORK=off")
	}
	listCmd.Env = env

	out, err := listCmd.Output()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing modules: %v\n", err)
	}
	roots := map[string]struct{}{appDir: {}}
	for _, line := range strings.Split(strings.TrimSpace(string(out)), "\n") {
		if line == "" || strings.HasPrefix(line, gomodcache) {
			continue
		}
		roots[line] = struct{}{}
	}
	for root := range roots {
		err = filepath.Walk(root, func(path string, info os.FileInfo, walkErr error) error {
			if walkErr != nil {
				return walkErr
			}
			if info.IsDir() {
				if watchErr := watcher.Add(path); watchErr != nil {
					fmt.Fprintf(os.Stderr, "Error watching %s: %v\n", path, watchErr)
				}
			}
			return nil
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error walking %s for file watching: %v\n", root, err)
		}
	}

	// Debounce rapid change bursts into one rebuild.
	rebuildTimer := time.NewTimer(0)
	if !rebuildTimer.Stop() {
		<-rebuildTimer.C
	}
	rebuildPending := false
	debounceDelay := 500 * time.Millisecond

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0 {
				ext := filepath.Ext(event.Name)
				if ext == ".go" || ext == ".mod" || ext == ".sum" {
					fmt.Printf("File changed (%s), scheduling rebuild...\n", event.Name)
					if !rebuildTimer.Stop() && rebuildPending {
						<-rebuildTimer.C
					}
					rebuildTimer.Reset(debounceDelay)
					rebuildPending = true
				}
			}
		case <-rebuildTimer.C:
			if rebuildPending {
				if err := onRebuild(); err != nil {
					fmt.Fprintf(os.Stderr, "Error during rebuild: %v\n", err)
				}
				rebuildPending = false
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "Watcher error: %v\n", err)
		}
	}
}
