// Package workdir finds the directory holding a project's .popup folder,
// supporting redirection via .popup-root files.
package workdir

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

const (
	rootFile = ".popup-root"
	stateDir = ".popup"
)

// ResolveBaseDir picks the project root for baseDir:
//  1. Honor .popup-root in the current directory.
//  2. Use the current directory if it already has a .popup directory.
//  3. Inside a git checkout, check the top level for either marker.
//
// With no markers it returns baseDir unchanged.
func ResolveBaseDir(baseDir string) string {
	if baseDir == "" {
		return baseDir
	}
	baseDir = filepath.Clean(baseDir)

	if dir, ok := resolveIn(baseDir); ok {
		return dir
	}

	top, err := gitTopLevel(baseDir)
	if err != nil || top == "" {
		return baseDir
	}
	if dir, ok := resolveIn(filepath.Clean(top)); ok {
		return dir
	}
	return baseDir
}

func resolveIn(dir string) (string, bool) {
	if target, ok := readRootFile(dir); ok {
		return target, true
	}
	fi, err := os.Stat(filepath.Join(dir, stateDir))
	if err == nil && fi.IsDir() {
		return dir, true
	}
	return "", false
}

func readRootFile(dir string) (string, bool) {
	content, err := os.ReadFile(filepath.Join(dir, rootFile))
	if err != nil {
		return "", false
	}

	target := strings.TrimSpace(string(content))
	if target == "" {
		return "", false
	}
	if !filepath.IsAbs(target) {
		target = filepath.Join(dir, target)
	}
	return filepath.Clean(target), true
}

func gitTopLevel(dir string) (string, error) {
	out, err := exec.Command("git", "-C", dir, "rev-parse", "--show-toplevel").Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}
