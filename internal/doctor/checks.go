package doctor

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/dtopr/internal/config"
	"github.com/thoreinstein/dtopr/internal/errors"
	"github.com/thoreinstein/dtopr/internal/install"
	"github.com/thoreinstein/dtopr/pkg/fileutil"
)

// ConfigCheck validates the config file, if there is one.
type ConfigCheck struct {
	Path string
}

var _ Check = (*ConfigCheck)(nil)

// NewConfigCheck creates a check for the config file at path.
func NewConfigCheck(path string) *ConfigCheck {
	return &ConfigCheck{Path: path}
}

// Name returns the unique identifier for this check.
func (c *ConfigCheck) Name() string {
	return "config-file"
}

// Category returns the grouping for this check.
func (c *ConfigCheck) Category() string {
	return "config"
}

// Run reads and validates the config file.
func (c *ConfigCheck) Run() *CheckResult {
	res := &CheckResult{Details: map[string]any{"path": c.Path}}

	data, err := fileutil.ReadFileWithLimit(c.Path)
	if errors.Is(err, fs.ErrNotExist) {
		res.Status = SeverityInfo
		res.Message = "no config file, using defaults"
		res.FixHint = "Run: dtopr init"
		return res
	}
	if err != nil {
		res.Status = SeverityError
		res.Message = fmt.Sprintf("cannot read config: %v", err)
		return res
	}

	cfg := config.Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && len(bytes.TrimSpace(data)) > 0 {
		res.Status = SeverityError
		res.Message = fmt.Sprintf("invalid YAML: %v", err)
		res.FixHint = "Run: dtopr config edit"
		return res
	}

	if errs := config.Validate(cfg); len(errs) > 0 {
		res.Status = SeverityError
		res.Message = errs[0].Error()
		res.Details["errors"] = len(errs)
		res.FixHint = "Run: dtopr config edit"
		return res
	}

	res.Status = SeverityPass
	res.Message = "config is valid"
	return res
}

// InstallDirCheck verifies entries can be moved into the install directory.
type InstallDirCheck struct {
	Dir string
}

var _ Check = (*InstallDirCheck)(nil)

// NewInstallDirCheck creates a check for dir.
func NewInstallDirCheck(dir string) *InstallDirCheck {
	return &InstallDirCheck{Dir: dir}
}

// Name returns the unique identifier for this check.
func (c *InstallDirCheck) Name() string {
	return "install-dir"
}

// Category returns the grouping for this check.
func (c *InstallDirCheck) Category() string {
	return "install"
}

// Run checks the directory exists and is writable.
func (c *InstallDirCheck) Run() *CheckResult {
	res := &CheckResult{Details: map[string]any{"path": c.Dir}}

	dir, err := install.ExpandDir(c.Dir)
	if err != nil {
		res.Status = SeverityError
		res.Message = err.Error()
		res.FixHint = "Run: dtopr config set install_dir <dir>"
		return res
	}
	res.Details["path"] = dir

	info, err := os.Stat(dir)
	switch {
	case os.IsNotExist(err):
		res.Status = SeverityWarning
		res.Message = fmt.Sprintf("%s does not exist yet; it is created on first install", dir)
		return res
	case err != nil:
		res.Status = SeverityError
		res.Message = fmt.Sprintf("cannot access %s: %v", dir, err)
		return res
	case !info.IsDir():
		res.Status = SeverityError
		res.Message = fmt.Sprintf("%s is not a directory", dir)
		res.FixHint = "Run: dtopr config set install_dir <dir>"
		return res
	}

	if !writable(dir) {
		res.Status = SeverityWarning
		res.Message = fmt.Sprintf("%s is not writable by this user", dir)
		res.FixHint = "Install with sudo, or pass --user"
		return res
	}

	res.Status = SeverityPass
	res.Message = fmt.Sprintf("%s is writable", dir)
	return res
}

func writable(dir string) bool {
	f, err := os.CreateTemp(dir, ".dtopr-doctor-*")
	if err != nil {
		return false
	}
	name := f.Name()
	f.Close()
	os.Remove(name)
	return true
}

// SearchPathCheck warns when the install directory is not one desktop
// environments read launchers from.
type SearchPathCheck struct {
	Dir        string
	SearchDirs []string
}

var _ Check = (*SearchPathCheck)(nil)

// NewSearchPathCheck creates a check that dir is among searchDirs.
func NewSearchPathCheck(dir string, searchDirs []string) *SearchPathCheck {
	return &SearchPathCheck{Dir: dir, SearchDirs: searchDirs}
}

// Name returns the unique identifier for this check.
func (c *SearchPathCheck) Name() string {
	return "search-path"
}

// Category returns the grouping for this check.
func (c *SearchPathCheck) Category() string {
	return "install"
}

// Run compares the cleaned paths.
func (c *SearchPathCheck) Run() *CheckResult {
	res := &CheckResult{Details: map[string]any{"search_dirs": c.SearchDirs}}

	dir, err := install.ExpandDir(c.Dir)
	if err != nil {
		res.Status = SeverityError
		res.Message = err.Error()
		return res
	}

	cleaned := make([]string, len(c.SearchDirs))
	for i, d := range c.SearchDirs {
		cleaned[i] = filepath.Clean(d)
	}
	if slices.Contains(cleaned, dir) {
		res.Status = SeverityPass
		res.Message = fmt.Sprintf("%s is on the application search path", dir)
		return res
	}

	res.Status = SeverityWarning
	res.Message = fmt.Sprintf("menus will not show entries installed in %s", dir)
	res.FixHint = "Install with --user, or add the parent directory to XDG_DATA_DIRS"
	return res
}
