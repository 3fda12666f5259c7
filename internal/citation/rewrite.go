package citation

import (
	"fmt"

	"github.com/lepinkainen/doinote/internal/crossref"
	"github.com/lepinkainen/doinote/internal/frontmatter"
)

// Rewrite merges work into existing and swaps the result into content's
// leading front matter block. The boolean is false when content has no
// block to replace, in which case content is returned unchanged.
func Rewrite(content string, existing *frontmatter.Frontmatter, work *crossref.Work) (string, bool, error) {
	block, err := frontmatter.Serialize(Merge(existing, work))
	if err != nil {
		return content, false, fmt.Errorf("serialize front matter: %w", err)
	}

	updated, found := frontmatter.ReplaceBlock(content, block)
	return updated, found, nil
}
