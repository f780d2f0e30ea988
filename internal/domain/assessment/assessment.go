// Package assessment holds the catalog record model: raw records as returned by
// a catalog source, the normalized Assessment used for scoring, and the public
// Projection returned to callers.
package assessment

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Record field names as stored in the catalog.
const (
	FieldURL             = "url"
	FieldName            = "name"
	FieldDescription     = "description"
	FieldTestType        = "test_type"
	FieldAdaptiveSupport = "adaptive_support"
	FieldDuration        = "duration"
	FieldRemoteSupport   = "remote_support"
)

// DefaultSupport is the value of adaptive_support and remote_support when absent.
const DefaultSupport = "No"

// Record is a raw catalog entry: attribute name to value, as decoded from the store.
type Record map[string]any

// Assessment is a fully populated catalog entry. Every field holds either the
// stored value or its default, so scoring never deals with missing attributes.
type Assessment struct {
	URL             string
	Name            string
	Description     string
	TestTypes       []string
	AdaptiveSupport string
	Duration        int
	RemoteSupport   string
}

// FromRecord normalizes a raw record. Missing or null attributes take their
// defaults; the record itself is not modified.
func FromRecord(r Record) Assessment {
	return Assessment{
		URL:             stringField(r, FieldURL, ""),
		Name:            stringField(r, FieldName, ""),
		Description:     stringField(r, FieldDescription, ""),
		TestTypes:       stringsField(r, FieldTestType),
		AdaptiveSupport: stringField(r, FieldAdaptiveSupport, DefaultSupport),
		Duration:        intField(r, FieldDuration),
		RemoteSupport:   stringField(r, FieldRemoteSupport, DefaultSupport),
	}
}

// HasTestTypeLabel reports whether any test type label contains one of the
// needles, case-insensitively.
func (a *Assessment) HasTestTypeLabel(needles ...string) bool {
	for _, label := range a.TestTypes {
		l := strings.ToLower(label)
		for _, n := range needles {
			if strings.Contains(l, n) {
				return true
			}
		}
	}
	return false
}

func stringField(r Record, key, def string) string {
	switch v := r[key].(type) {
	case string:
		return v
	case nil:
		return def
	case json.Number:
		return v.String()
	default:
		return def
	}
}

func stringsField(r Record, key string) []string {
	switch v := r[key].(type) {
	case []string:
		out := make([]string, len(v))
		copy(out, v)
		return out
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case string:
		// Stores without array columns keep a single label as plain text.
		if v == "" {
			return []string{}
		}
		return []string{v}
	default:
		return []string{}
	}
}

func intField(r Record, key string) int {
	switch v := r[key].(type) {
	case int:
		return v
	case int32:
		return int(v)
	case int64:
		return int(v)
	case float32:
		return int(math.Round(float64(v)))
	case float64:
		return int(math.Round(v))
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return int(n)
		}
		if f, err := v.Float64(); err == nil {
			return int(math.Round(f))
		}
		return 0
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}
