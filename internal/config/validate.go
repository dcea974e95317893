package config

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

var (
	ErrVersionTooLow = errors.New("version must be >= 1")
	ErrInvalidPicker = errors.New("invalid picker")
	// ErrInvalidPath covers empty-after-cleaning, NUL bytes and relative
	// install directories.
	ErrInvalidPath = errors.New("invalid path")
)

// ValueError ties a validation failure to the key that caused it.
type ValueError struct {
	Field string
	Value string
	Err   error
}

func (e *ValueError) Error() string {
	return e.Field + ": " + e.Err.Error() + ": " + e.Value
}

func (e *ValueError) Unwrap() error {
	return e.Err
}

// Validate returns every problem with cfg, in key order, or nil.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error
	add := func(field, value string, err error) {
		if err != nil {
			errs = append(errs, &ValueError{Field: field, Value: value, Err: err})
		}
	}

	if cfg.Version < 1 {
		add("version", strconv.Itoa(cfg.Version), ErrVersionTooLow)
	}
	add("picker", cfg.Picker, validatePicker(cfg.Picker))
	add("install_dir", cfg.InstallDir, validateInstallDir(cfg.InstallDir))

	return errs
}

func validatePicker(p string) error {
	switch p {
	case "", PickerNumbered, PickerFuzzy:
		return nil
	}
	return ErrInvalidPicker
}

// validateInstallDir accepts "" (use the default), absolute paths and paths
// under the home directory ("~/..."). Existence is checked by dtopr doctor.
func validateInstallDir(dir string) error {
	switch {
	case dir == "":
		return nil
	case strings.ContainsRune(dir, '\x00'):
		return ErrInvalidPath
	case dir == "~" || strings.HasPrefix(dir, "~/"):
		return nil
	case !filepath.IsAbs(filepath.Clean(dir)):
		return errors.Wrap(ErrInvalidPath, "must be absolute")
	}
	return nil
}
