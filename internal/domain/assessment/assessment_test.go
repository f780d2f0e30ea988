package assessment

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestFromRecord_Defaults(t *testing.T) {
	a := FromRecord(Record{"url": "https://example.com/a"})

	if a.URL != "https://example.com/a" {
		t.Errorf("URL = %q", a.URL)
	}
	if a.Name != "" || a.Description != "" {
		t.Errorf("expected empty text fields, got %q / %q", a.Name, a.Description)
	}
	if a.TestTypes == nil || len(a.TestTypes) != 0 {
		t.Errorf("TestTypes = %#v, want empty non-nil slice", a.TestTypes)
	}
	if a.AdaptiveSupport != "No" || a.RemoteSupport != "No" {
		t.Errorf("support defaults = %q / %q", a.AdaptiveSupport, a.RemoteSupport)
	}
	if a.Duration != 0 {
		t.Errorf("Duration = %d", a.Duration)
	}
}

func TestFromRecord_NullValues(t *testing.T) {
	a := FromRecord(Record{
		"url": "u", "name": nil, "description": nil, "test_type": nil,
		"adaptive_support": nil, "duration": nil, "remote_support": nil,
	})
	if a.Name != "" || a.AdaptiveSupport != "No" || a.RemoteSupport != "No" || a.Duration != 0 {
		t.Errorf("unexpected normalization of nulls: %+v", a)
	}
}

func TestFromRecord_Types(t *testing.T) {
	tests := []struct {
		name         string
		rec          Record
		wantDuration int
		wantTypes    []string
	}{
		{"json decoded", Record{"duration": float64(25), "test_type": []any{"Knowledge & Skills", 3}}, 25, []string{"Knowledge & Skills"}},
		{"native", Record{"duration": 30, "test_type": []string{"Personality & Behavior"}}, 30, []string{"Personality & Behavior"}},
		{"int64", Record{"duration": int64(18)}, 18, []string{}},
		{"string", Record{"duration": " 20 ", "test_type": "Competencies"}, 20, []string{"Competencies"}},
		{"json number", Record{"duration": json.Number("36")}, 36, []string{}},
		{"garbage", Record{"duration": "n/a", "test_type": 12}, 0, []string{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := FromRecord(tc.rec)
			if a.Duration != tc.wantDuration {
				t.Errorf("Duration = %d, want %d", a.Duration, tc.wantDuration)
			}
			if !reflect.DeepEqual(a.TestTypes, tc.wantTypes) {
				t.Errorf("TestTypes = %#v, want %#v", a.TestTypes, tc.wantTypes)
			}
		})
	}
}

func TestFromRecord_DoesNotAliasInput(t *testing.T) {
	labels := []string{"Knowledge"}
	rec := Record{"test_type": labels}
	a := FromRecord(rec)
	a.TestTypes[0] = "changed"
	if labels[0] != "Knowledge" {
		t.Error("normalization must not share the record's slice")
	}
}

func TestHasTestTypeLabel(t *testing.T) {
	a := Assessment{TestTypes: []string{"Ability & Aptitude", "Knowledge & Skills"}}
	if !a.HasTestTypeLabel("skill") {
		t.Error("expected case-insensitive label match")
	}
	if a.HasTestTypeLabel("personality", "behavior") {
		t.Error("unexpected label match")
	}
}

func TestProject_JSONShape(t *testing.T) {
	p := Project(FromRecord(Record{"url": "u", "name": "SQL"}))

	data, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	for _, key := range []string{
		"url", "name", "adaptive_support", "description", "duration", "remote_support", "test_type",
	} {
		if _, ok := m[key]; !ok {
			t.Errorf("missing key %q in %s", key, data)
		}
	}
	if tt, ok := m["test_type"].([]any); !ok || len(tt) != 0 {
		t.Errorf("test_type = %v, want []", m["test_type"])
	}
}

func TestProject_EmptySupportDefaults(t *testing.T) {
	p := Project(Assessment{URL: "u"})
	if p.AdaptiveSupport != "No" || p.RemoteSupport != "No" {
		t.Errorf("got %q / %q", p.AdaptiveSupport, p.RemoteSupport)
	}
}

func TestProject_Idempotent(t *testing.T) {
	recs := []Record{
		{"url": "a"},
		{
			"url": "b", "name": "OPQ32", "description": "personality questionnaire",
			"test_type": []any{"Personality & Behavior"}, "adaptive_support": "Yes",
			"duration": float64(30), "remote_support": "Yes",
		},
	}
	for _, rec := range recs {
		once := Project(FromRecord(rec))
		twice := Project(FromRecord(once.Record()))
		if !reflect.DeepEqual(once, twice) {
			t.Errorf("projection not idempotent:\nonce:  %+v\ntwice: %+v", once, twice)
		}
	}
}
