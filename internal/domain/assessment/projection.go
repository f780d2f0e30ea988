package assessment

// Projection is the public shape of a recommended assessment. All keys are
// always present in JSON.
type Projection struct {
	URL             string   `json:"url"`
	Name            string   `json:"name"`
	AdaptiveSupport string   `json:"adaptive_support"`
	Description     string   `json:"description"`
	Duration        int      `json:"duration"`
	RemoteSupport   string   `json:"remote_support"`
	TestType        []string `json:"test_type"`
}

// Project maps a normalized assessment to its public shape.
func Project(a Assessment) Projection {
	testTypes := make([]string, len(a.TestTypes))
	copy(testTypes, a.TestTypes)

	adaptive := a.AdaptiveSupport
	if adaptive == "" {
		adaptive = DefaultSupport
	}
	remote := a.RemoteSupport
	if remote == "" {
		remote = DefaultSupport
	}

	return Projection{
		URL:             a.URL,
		Name:            a.Name,
		AdaptiveSupport: adaptive,
		Description:     a.Description,
		Duration:        a.Duration,
		RemoteSupport:   remote,
		TestType:        testTypes,
	}
}

// Record converts the projection back into a raw record.
func (p Projection) Record() Record {
	testTypes := make([]string, len(p.TestType))
	copy(testTypes, p.TestType)
	return Record{
		FieldURL:             p.URL,
		FieldName:            p.Name,
		FieldAdaptiveSupport: p.AdaptiveSupport,
		FieldDescription:     p.Description,
		FieldDuration:        p.Duration,
		FieldRemoteSupport:   p.RemoteSupport,
		FieldTestType:        testTypes,
	}
}
