package cliutil

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Bundle is the on-disk JSON shape ringsig-cli reads and writes, grounded
// on original_source/ringsig/src/ringsig-cli.rs's FileContents struct.
type Bundle struct {
	Version    int      `json:"version"`
	PublicKeys []string `json:"publicKeys"`
	Message    string   `json:"message"`
	Proof      *string  `json:"proof"`
}

const bundleVersion = 1

// ReadBundle reads a Bundle from path, or from stdin when path is "-".
func ReadBundle(path string) (Bundle, error) {
	var r io.Reader
	if path == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return Bundle{}, err
		}
		defer f.Close()
		r = f
	}

	var b Bundle
	if err := json.NewDecoder(r).Decode(&b); err != nil {
		return Bundle{}, fmt.Errorf("decoding bundle: %w", err)
	}
	if b.Version != bundleVersion {
		return Bundle{}, fmt.Errorf("unsupported bundle version %d", b.Version)
	}
	return b, nil
}

// WriteBundle writes b as indented JSON to w.
func WriteBundle(w io.Writer, b Bundle) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(b)
}

// FindSecretKeyInSSHDir tries every regular file under ~/.ssh, in
// directory order, returning the first one that parses as an unencrypted
// OpenSSH secret key per isSecretKey. It never descends into
// subdirectories.
func FindSecretKeyInSSHDir(isSecretKey func(string) bool) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	sshDir := filepath.Join(home, ".ssh")

	entries, err := os.ReadDir(sshDir)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", sshDir, err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		contents, err := os.ReadFile(filepath.Join(sshDir, entry.Name()))
		if err != nil {
			continue
		}
		if isSecretKey(string(contents)) {
			return string(contents), nil
		}
	}
	return "", fmt.Errorf("no secret key found under %s", sshDir)
}
