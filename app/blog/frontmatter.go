package blog

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/adrg/frontmatter"
)

// Opening delimiter -> closing delimiter of the supported block formats.
var blockDelimiters = map[string]string{
	"---": "---", // YAML
	"+++": "+++", // TOML
	";;;": ";;;", // JSON
}

// ParseFrontmatter splits raw file content into its metadata block and body.
// Content without a leading block yields an empty Frontmatter and the whole
// input as body. An unterminated or undecodable block is an error.
func ParseFrontmatter(raw []byte) (Frontmatter, []byte, error) {
	found, err := detectBlock(raw)
	if err != nil {
		return nil, nil, err
	}
	if !found {
		return Frontmatter{}, raw, nil
	}

	var fm Frontmatter
	body, err := frontmatter.Parse(bytes.NewReader(raw), &fm)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrMalformedFrontmatter, err)
	}
	if fm == nil {
		fm = Frontmatter{}
	}

	return fm, body, nil
}

// detectBlock reports whether raw opens with a known delimiter line and
// checks that the block is closed.
func detectBlock(raw []byte) (bool, error) {
	lines := strings.Split(string(raw), "\n")

	i := 0
	for i < len(lines) && strings.TrimSpace(lines[i]) == "" {
		i++
	}
	if i == len(lines) {
		return false, nil
	}

	closing, ok := blockDelimiters[strings.TrimSpace(lines[i])]
	if !ok {
		return false, nil
	}

	for _, line := range lines[i+1:] {
		if strings.TrimSpace(line) == closing {
			return true, nil
		}
	}

	return true, fmt.Errorf("%w: missing closing %q delimiter", ErrMalformedFrontmatter, closing)
}
