package normalizer

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/erraggy/oascomponents/document"
)

// idTokenRegex matches word-delimited runs of hexadecimal characters.
var idTokenRegex = regexp.MustCompile(`\b[0-9A-Fa-f]+\b`)

// PathRewrite records one path template rewritten with placeholders.
type PathRewrite struct {
	// From is the original path template
	From string
	// To is the rewritten path template
	To string
	// Placeholders maps each placeholder name to the literal token it replaced,
	// in placeholder order
	Placeholders []Placeholder
	// Merged is true when To already existed and the path items were combined
	Merged bool
}

// Placeholder is one literal identifier replaced in a path template.
type Placeholder struct {
	Name  string
	Token string
}

// idTokens returns the distinct identifier-like tokens of path in order of
// first appearance. Tokens without a decimal digit are words ("add",
// "feed"), not identifiers, and are skipped.
func idTokens(path string) []string {
	var tokens []string
	seen := make(map[string]bool)
	for _, tok := range idTokenRegex.FindAllString(path, -1) {
		if seen[tok] || !strings.ContainsAny(tok, "0123456789") {
			continue
		}
		seen[tok] = true
		tokens = append(tokens, tok)
	}
	return tokens
}

// replaceToken replaces every word-delimited occurrence of tok in s.
func replaceToken(s, tok, replacement string) string {
	re := regexp.MustCompile(`\b` + regexp.QuoteMeta(tok) + `\b`)
	return re.ReplaceAllLiteralString(s, replacement)
}

// nextPlaceholder returns the first placeholder name `<prefix>N`, N >= *n,
// that template does not already use, and advances *n past it.
func nextPlaceholder(template, prefix string, n *int) (name, placeholder string) {
	for {
		name = fmt.Sprintf("%s%d", prefix, *n)
		placeholder = "{" + name + "}"
		*n++
		if !strings.Contains(template, placeholder) {
			return name, placeholder
		}
	}
}

// normalizePaths rewrites every path template of paths, replacing
// identifier tokens by `{<prefix>N}` placeholders and declaring a matching
// path parameter on every operation of the path. Counters restart at zero
// for each path and skip placeholder names the template already uses.
func normalizePaths(paths map[string]any, prefix string, log document.Logger) []PathRewrite {
	templates := make([]string, 0, len(paths))
	for p := range paths {
		templates = append(templates, p)
	}
	sort.Strings(templates)

	var rewrites []PathRewrite
	for _, path := range templates {
		item, ok := paths[path].(map[string]any)
		if !ok {
			continue
		}
		tokens := idTokens(path)
		if len(tokens) == 0 {
			continue
		}

		rewrite := PathRewrite{From: path, To: path}
		n := 0
		for _, tok := range tokens {
			name, placeholder := nextPlaceholder(rewrite.To, prefix, &n)
			rewrite.To = replaceToken(rewrite.To, tok, placeholder)
			rewrite.Placeholders = append(rewrite.Placeholders, Placeholder{Name: name, Token: tok})

			for _, method := range sortedKeys(item) {
				op, ok := item[method].(map[string]any)
				if !ok {
					continue
				}
				if summary, ok := op["summary"].(string); ok && summary != "" {
					op["summary"] = replaceToken(summary, tok, placeholder)
				}
				addPathParameter(op, name, path, method, log)
			}
		}

		if rewrite.To == path {
			continue
		}
		if existing, ok := paths[rewrite.To].(map[string]any); ok {
			mergePathItems(existing, item, rewrite.To, log)
			rewrite.Merged = true
		} else {
			paths[rewrite.To] = item
		}
		delete(paths, path)
		log.Debug("rewrote path", "from", path, "to", rewrite.To)
		rewrites = append(rewrites, rewrite)
	}
	return rewrites
}

func addPathParameter(op map[string]any, name, path, method string, log document.Logger) {
	param := map[string]any{
		"name":     name,
		"in":       "path",
		"required": true,
	}
	switch params := op["parameters"].(type) {
	case nil:
		op["parameters"] = []any{param}
	case []any:
		op["parameters"] = append(params, param)
	default:
		log.Warn("parameters is not a sequence, placeholder not declared",
			"path", path, "method", method, "placeholder", name)
	}
}

// mergePathItems folds src into dst. Operations already present in dst
// are kept.
func mergePathItems(dst, src map[string]any, path string, log document.Logger) {
	for _, method := range sortedKeys(src) {
		if _, ok := dst[method]; ok {
			log.Warn("path collision, keeping existing operation", "path", path, "method", method)
			continue
		}
		dst[method] = src[method]
	}
}
