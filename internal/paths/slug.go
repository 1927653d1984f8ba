// Package paths holds the slug and relative-URL helpers shared by page
// components.
package paths

import "strings"

// FullSlug is the logical, URL-like identifier of a page inside the site
// tree, e.g. "blog/post1" or "index". It never carries a leading slash.
type FullSlug string

// RelativeURL is a link that is only meaningful relative to the page it is
// rendered on, e.g. ".." or "./tags".
type RelativeURL string

// PathToRoot returns the relative path from the page identified by slug
// back to the site root. Every directory segment of the slug contributes
// one "..". A slug without a directory part resolves to ".".
func PathToRoot(slug FullSlug) RelativeURL {
	segments := segments(string(slug))
	if len(segments) <= 1 {
		return "."
	}

	ups := make([]string, len(segments)-1)
	for i := range ups {
		ups[i] = ".."
	}
	return RelativeURL(strings.Join(ups, "/"))
}

// JoinSegments joins path fragments with a single slash, trimming
// redundant slashes at the joints and dropping empty fragments.
func JoinSegments(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for i, p := range parts {
		if i > 0 {
			p = strings.TrimLeft(p, "/")
		}
		if i < len(parts)-1 {
			p = strings.TrimRight(p, "/")
		}
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, "/")
}

func segments(s string) []string {
	var out []string
	for _, seg := range strings.Split(s, "/") {
		if seg != "" {
			out = append(out, seg)
		}
	}
	return out
}
