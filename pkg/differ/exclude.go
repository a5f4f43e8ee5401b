package differ

import (
	"fmt"
	"regexp"
	"strings"
)

// quotedIndexRe rewrites index-as-string artifacts like ['0'] to [0] so
// every path renders its numeric indices the same way.
var quotedIndexRe = regexp.MustCompile(`\['(\d+)'\]`)

func normalizePath(raw string) string {
	return quotedIndexRe.ReplaceAllString(raw, "[$1]")
}

func joinPath(parent, key string) string {
	if parent == "" {
		return normalizePath(key)
	}
	return normalizePath(parent + "." + key)
}

func indexPath(parent string, index int) string {
	return fmt.Sprintf("%s[%d]", parent, index)
}

// shouldExclude reports whether path matches one of the exclusion
// patterns. Matching is segment-wise on dot-separated parts:
//
//   - a literal segment must equal the path segment exactly
//   - a segment ending in [*] matches any concrete index of the same base,
//     so items[*] covers items[0] and items[17] but not itemsX[0]
//   - a pattern with fewer segments than the path excludes the whole
//     subtree beneath its matching prefix
//
// Patterns longer than the path never match, and no substring matching
// happens outside these rules. First match wins.
func shouldExclude(path string, patterns []string) bool {
	if path == "" || len(patterns) == 0 {
		return false
	}
	pathParts := strings.Split(path, ".")

	for _, pattern := range patterns {
		if pattern == path {
			return true
		}
		if matchesPrefix(pathParts, strings.Split(pattern, ".")) {
			return true
		}
	}
	return false
}

func matchesPrefix(pathParts, patternParts []string) bool {
	if len(patternParts) > len(pathParts) {
		return false
	}
	for i, part := range patternParts {
		if base, ok := strings.CutSuffix(part, "[*]"); ok {
			if segmentBase(pathParts[i]) != base {
				return false
			}
			continue
		}
		if part != pathParts[i] {
			return false
		}
	}
	return true
}

// segmentBase strips a trailing [n] index from a path segment.
func segmentBase(segment string) string {
	if open := strings.IndexByte(segment, '['); open >= 0 {
		return segment[:open]
	}
	return segment
}
