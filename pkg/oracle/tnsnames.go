package oracle

import (
	"fmt"
	"strings"

	"github.com/spf13/afero"
)

// ResolveAlias looks up a net service name in a tnsnames.ora file and
// returns its raw connect descriptor, e.g. "(DESCRIPTION=...)".
// Alias matching is case-insensitive. Comma-separated alias lists on the
// left-hand side are supported.
func ResolveAlias(fs afero.Fs, path, alias string) (string, error) {
	b, err := afero.ReadFile(fs, path)
	if err != nil {
		return "", fmt.Errorf("read the tnsnames.ora file: %w", err)
	}
	entries := parseTNSNames(string(b))
	for names, descriptor := range entries {
		for _, name := range strings.Split(names, ",") {
			if strings.EqualFold(strings.TrimSpace(name), alias) {
				return descriptor, nil
			}
		}
	}
	return "", fmt.Errorf("the alias %q is not defined in %s", alias, path)
}

// parseTNSNames splits a tnsnames.ora document into name-list →
// descriptor pairs. Names sit at parenthesis depth zero before an "=",
// the descriptor is the following balanced-parenthesis group.
func parseTNSNames(doc string) map[string]string {
	entries := map[string]string{}
	var name, descriptor strings.Builder
	depth := 0
	inComment := false
	for _, r := range doc {
		if inComment {
			if r == '\n' {
				inComment = false
			}
			continue
		}
		switch {
		case depth == 0 && r == '#':
			inComment = true
		case depth == 0 && r == '=':
			// descriptor follows
		case r == '(':
			depth++
			descriptor.WriteRune(r)
		case r == ')':
			depth--
			descriptor.WriteRune(r)
		case depth > 0:
			descriptor.WriteRune(r)
		case depth == 0 && (r == '\n' || r == '\r'):
			if descriptor.Len() > 0 {
				flush(entries, &name, &descriptor)
			}
		default:
			if descriptor.Len() > 0 {
				// text at depth zero after a descriptor starts the
				// next entry's name
				flush(entries, &name, &descriptor)
			}
			name.WriteRune(r)
		}
	}
	if descriptor.Len() > 0 {
		flush(entries, &name, &descriptor)
	}
	return entries
}

func flush(entries map[string]string, name, descriptor *strings.Builder) {
	n := strings.TrimSpace(name.String())
	d := strings.TrimSpace(descriptor.String())
	if n != "" && d != "" {
		entries[n] = d
	}
	name.Reset()
	descriptor.Reset()
}
