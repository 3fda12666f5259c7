package frontmatter

import "regexp"

// blockPattern matches a front matter block at the very start of a document:
// a delimiter line, arbitrary content, and the first following delimiter line.
var blockPattern = regexp.MustCompile(`\A---\n(?s:.*?)\n---\n`)

// ReplaceBlock swaps the leading front matter block of content for block
// followed by a single newline. When content has no such block it is
// returned unchanged and the second result is false.
func ReplaceBlock(content, block string) (string, bool) {
	loc := blockPattern.FindStringIndex(content)
	if loc == nil {
		return content, false
	}
	return block + "\n" + content[loc[1]:], true
}
