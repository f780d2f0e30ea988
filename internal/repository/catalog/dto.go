package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/kailas-cloud/assessrec/internal/domain/assessment"
)

// assessmentToHash converts an assessment to a map for HSET.
// Test types are stored as a JSON array without HTML escaping.
func assessmentToHash(a *assessment.Assessment) (map[string]string, error) {
	types := a.TestTypes
	if types == nil {
		types = []string{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(types); err != nil {
		return nil, fmt.Errorf("marshal test types: %w", err)
	}
	typesJSON := bytes.TrimSuffix(buf.Bytes(), []byte("\n"))
	return map[string]string{
		assessment.FieldURL:             a.URL,
		assessment.FieldName:            a.Name,
		assessment.FieldDescription:     a.Description,
		assessment.FieldTestType:        string(typesJSON),
		assessment.FieldAdaptiveSupport: a.AdaptiveSupport,
		assessment.FieldRemoteSupport:   a.RemoteSupport,
		assessment.FieldDuration:        strconv.Itoa(a.Duration),
	}, nil
}

// recordFromHash converts an HGETALL result into a catalog record. Fields
// missing from the hash stay missing; a malformed value is kept as text.
func recordFromHash(m map[string]string) assessment.Record {
	rec := make(assessment.Record, len(m))
	for k, v := range m {
		switch k {
		case assessment.FieldTestType:
			var types []string
			if err := json.Unmarshal([]byte(v), &types); err == nil {
				rec[k] = types
				continue
			}
			rec[k] = v
		case assessment.FieldDuration:
			if n, err := strconv.Atoi(v); err == nil {
				rec[k] = n
				continue
			}
			rec[k] = v
		default:
			rec[k] = v
		}
	}
	return rec
}
