// Package fonts installs the brand fonts into the user font directory.
package fonts

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
)

// Required lists the two brand fonts with a short description of their role.
var Required = map[string]string{
	"PPNeueMontreal-Regular": "Primary font for all text",
	"Items-Regular":          "Title font",
}

var fontExtensions = map[string]bool{
	".otf": true, ".ttf": true, ".ttc": true, ".woff": true, ".woff2": true,
}

// SystemDir returns the per-user font directory for the current platform.
// It returns an error on platforms with no known user font directory.
func SystemDir() (string, error) {
	return systemDir(runtime.GOOS)
}

func systemDir(goos string) (string, error) {
	switch goos {
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, "Library", "Fonts"), nil
	case "windows":
		return filepath.Join(os.Getenv("LOCALAPPDATA"), "Microsoft", "Windows", "Fonts"), nil
	case "linux":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".local", "share", "fonts"), nil
	default:
		return "", fmt.Errorf("no known font directory on %s", goos)
	}
}

// List returns the font files in dir, sorted by name.
func List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var fonts []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if fontExtensions[strings.ToLower(filepath.Ext(e.Name()))] {
			fonts = append(fonts, e.Name())
		}
	}
	sort.Strings(fonts)
	return fonts, nil
}

// Result reports the outcome of an Install run.
type Result struct {
	Installed []string
	Skipped   []string
}

// Install copies every font file from src into dst, creating dst if needed.
// Fonts already present in dst are skipped unless force is set.
func Install(src, dst string, force bool) (Result, error) {
	var res Result

	fonts, err := List(src)
	if err != nil {
		return res, err
	}
	if err := os.MkdirAll(dst, 0755); err != nil {
		return res, err
	}

	for _, name := range fonts {
		target := filepath.Join(dst, name)
		if _, err := os.Stat(target); err == nil && !force {
			res.Skipped = append(res.Skipped, name)
			continue
		}
		if err := copyFile(filepath.Join(src, name), target); err != nil {
			return res, fmt.Errorf("cannot install %s: %w", name, err)
		}
		res.Installed = append(res.Installed, name)
	}
	return res, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// Installed reports whether a font whose file name contains name exists in
// dir.
func Installed(dir, name string) bool {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false
	}
	for _, e := range entries {
		if !e.IsDir() && strings.Contains(e.Name(), name) {
			return true
		}
	}
	return false
}

// Status reports, for each required font, whether it is installed in dir.
func Status(dir string) map[string]bool {
	status := make(map[string]bool, len(Required))
	for name := range Required {
		status[name] = Installed(dir, name)
	}
	return status
}
