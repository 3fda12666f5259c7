// Package obsidian adapts a vault directory on disk to the document and
// metadata interfaces used by the citation updater.
package obsidian

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lepinkainen/doinote/internal/fileutil"
	"github.com/lepinkainen/doinote/internal/frontmatter"
)

// Vault reads and writes notes under Root. Relative paths are resolved
// against Root, absolute paths are used as-is.
type Vault struct {
	Root string
}

// NewVault returns a Vault rooted at root.
func NewVault(root string) *Vault {
	return &Vault{Root: root}
}

// Resolve returns the filesystem path of a note.
func (v *Vault) Resolve(path string) string {
	if filepath.IsAbs(path) || v.Root == "" {
		return path
	}
	return filepath.Join(v.Root, path)
}

// Frontmatter parses the leading front matter block of a note.
// A note without a block yields an empty Frontmatter.
func (v *Vault) Frontmatter(ctx context.Context, path string) (*frontmatter.Frontmatter, error) {
	content, err := v.Read(ctx, path)
	if err != nil {
		return nil, err
	}

	fm, err := frontmatter.Parse([]byte(content))
	if err != nil {
		return nil, fmt.Errorf("parse front matter of %s: %w", path, err)
	}
	return fm, nil
}

// Read returns the full text of a note.
func (v *Vault) Read(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	content, err := os.ReadFile(v.Resolve(path))
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}
	return string(content), nil
}

// Modify replaces the full text of a note.
func (v *Vault) Modify(ctx context.Context, path, content string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if _, err := fileutil.WriteFileWithOverwrite(v.Resolve(path), []byte(content), 0644, true); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}
