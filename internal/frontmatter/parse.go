package frontmatter

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Delimiter opens and closes a front matter block.
const Delimiter = "---"

// Parse parses the leading front matter block of a markdown document.
// A document without a leading block yields an empty Frontmatter.
func Parse(content []byte) (*Frontmatter, error) {
	yamlText, ok := leadingBlock(string(content))
	if !ok {
		return New(), nil
	}

	var data map[string]any
	if err := yaml.Unmarshal([]byte(yamlText), &data); err != nil {
		return nil, fmt.Errorf("failed to parse frontmatter: %w", err)
	}

	return FromMap(data), nil
}

// leadingBlock returns the YAML text between the opening delimiter on the
// first line and the next delimiter line. LF and CRLF line endings are
// accepted, and the closing delimiter may be the last line without a newline.
func leadingBlock(content string) (string, bool) {
	first, rest, found := strings.Cut(content, "\n")
	if !found || strings.TrimSuffix(first, "\r") != Delimiter {
		return "", false
	}

	var lines []string
	for {
		line, remainder, more := strings.Cut(rest, "\n")
		if strings.TrimSuffix(line, "\r") == Delimiter {
			return strings.Join(lines, "\n"), true
		}
		if !more {
			return "", false
		}
		lines = append(lines, strings.TrimSuffix(line, "\r"))
		rest = remainder
	}
}
