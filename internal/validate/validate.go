// Package validate checks dataset shape before data is served and repairs
// values that must not reach clients as-is.
package validate

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/preston-bernstein/nba-stats-service/internal/domain"
)

// CollectionShape confirms raw is a JSON object whose field holds an array.
// The array is returned so callers decode only the validated part.
func CollectionShape(raw []byte, field string) (gjson.Result, error) {
	if len(raw) == 0 {
		return gjson.Result{}, fmt.Errorf("%w: empty document", domain.ErrInvalidFormat)
	}
	if !gjson.ValidBytes(raw) {
		return gjson.Result{}, fmt.Errorf("%w: document is not valid JSON", domain.ErrInvalidFormat)
	}
	root := gjson.ParseBytes(raw)
	if !root.IsObject() {
		return gjson.Result{}, fmt.Errorf("%w: document root is not an object", domain.ErrInvalidFormat)
	}
	value := root.Get(gjson.Escape(field))
	if !value.Exists() {
		return gjson.Result{}, fmt.Errorf("%w: missing %q collection", domain.ErrInvalidFormat, field)
	}
	if !value.IsArray() {
		return gjson.Result{}, fmt.Errorf("%w: %q is not a sequence", domain.ErrInvalidFormat, field)
	}
	return value, nil
}

// Sequence confirms raw is a JSON array at the document root.
func Sequence(raw []byte) (gjson.Result, error) {
	if !gjson.ValidBytes(raw) {
		return gjson.Result{}, fmt.Errorf("%w: document is not valid JSON", domain.ErrInvalidFormat)
	}
	root := gjson.ParseBytes(raw)
	if !root.IsArray() {
		return gjson.Result{}, fmt.Errorf("%w: document root is not a sequence", domain.ErrInvalidFormat)
	}
	return root, nil
}

// SanitizeImageURL returns url when it starts with allowedPrefix, otherwise fallback.
func SanitizeImageURL(url, allowedPrefix, fallback string) string {
	if strings.HasPrefix(url, allowedPrefix) {
		return url
	}
	return fallback
}

// ImagePolicy pairs the allowlisted image prefix with the asset served in its place.
type ImagePolicy struct {
	AllowedPrefix string
	Fallback      string
}

// Apply sanitizes url and reports whether it had to be replaced.
func (p ImagePolicy) Apply(url string) (string, bool) {
	out := SanitizeImageURL(url, p.AllowedPrefix, p.Fallback)
	return out, out != url
}
