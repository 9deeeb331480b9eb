package plugins

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/jumppad-labs/hdltarget/logger"
)

// DefaultPattern matches target plugin binaries, i.e. tgt-stub
const DefaultPattern = "tgt-*"

// TargetInfo represents a discovered target plugin
type TargetInfo struct {
	Name string // Target name, the binary name without the tgt- prefix
	Path string // Full path to the plugin binary
}

// TargetDiscovery finds target plugin binaries in a list of folders
type TargetDiscovery struct {
	directories []string
	pattern     string
	logger      logger.Logger
}

// NewTargetDiscovery creates a new TargetDiscovery, an empty pattern uses
// DefaultPattern
func NewTargetDiscovery(directories []string, pattern string, l logger.Logger) *TargetDiscovery {
	if l == nil {
		l = logger.NopLogger{}
	}

	if pattern == "" {
		pattern = DefaultPattern
	}

	return &TargetDiscovery{
		directories: directories,
		pattern:     pattern,
		logger:      l,
	}
}

// DefaultDirectories returns the folders searched for target plugins: the
// entries of HDLTARGET_PLUGIN_PATH, $HOME/.hdltarget/plugins and the folder
// of the running executable
func DefaultDirectories() []string {
	dirs := filepath.SplitList(os.Getenv("HDLTARGET_PLUGIN_PATH"))

	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".hdltarget", "plugins"))
	}

	if exe, err := os.Executable(); err == nil {
		dirs = append(dirs, filepath.Dir(exe))
	}

	return dirs
}

// Discover returns every target plugin in the configured folders. When the
// same name is found twice the first folder wins.
func (d *TargetDiscovery) Discover() ([]TargetInfo, error) {
	var targets []TargetInfo
	var errs int

	seen := map[string]bool{}

	for _, dir := range d.uniqueDirectories() {
		found, err := d.discoverInDirectory(dir)
		if err != nil {
			d.logger.Warn("failed to discover targets", "dir", dir, "error", err)
			errs++
			continue
		}

		for _, t := range found {
			if seen[t.Name] {
				continue
			}

			seen[t.Name] = true
			targets = append(targets, t)
		}
	}

	if len(targets) == 0 && errs > 0 {
		return nil, fmt.Errorf("no targets found, encountered %d errors during discovery", errs)
	}

	d.logger.Debug("discovered targets", "count", len(targets), "platform", runtime.GOOS+"-"+runtime.GOARCH)

	return targets, nil
}

// Find returns the target with the given name
func (d *TargetDiscovery) Find(name string) (*TargetInfo, error) {
	targets, err := d.Discover()
	if err != nil {
		return nil, err
	}

	for _, t := range targets {
		if t.Name == name {
			return &t, nil
		}
	}

	return nil, fmt.Errorf("target %s not found in %s", name, strings.Join(d.directories, string(os.PathListSeparator)))
}

func (d *TargetDiscovery) uniqueDirectories() []string {
	seen := map[string]bool{}
	dirs := []string{}

	for _, dir := range d.directories {
		if dir == "" {
			continue
		}

		abs, err := filepath.Abs(dir)
		if err != nil {
			d.logger.Debug("failed to resolve directory", "dir", dir, "error", err)
			continue
		}

		if !seen[abs] {
			seen[abs] = true
			dirs = append(dirs, abs)
		}
	}

	return dirs
}

func (d *TargetDiscovery) discoverInDirectory(dir string) ([]TargetInfo, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			// not an error, just no plugins
			return nil, nil
		}

		return nil, err
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}

	matches, err := filepath.Glob(filepath.Join(dir, d.pattern))
	if err != nil {
		return nil, err
	}

	sort.Strings(matches)

	targets := []TargetInfo{}
	for _, m := range matches {
		if !isExecutable(m) {
			d.logger.Debug("skipping non executable file", "path", m)
			continue
		}

		name := strings.TrimSuffix(filepath.Base(m), filepath.Ext(m))
		name = strings.TrimPrefix(name, strings.TrimSuffix(d.pattern, "*"))

		targets = append(targets, TargetInfo{Name: name, Path: m})
	}

	return targets, nil
}

func isExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}

	if runtime.GOOS == "windows" {
		return strings.EqualFold(filepath.Ext(path), ".exe")
	}

	return info.Mode()&0111 != 0
}
