package client

// Assessment is a recommended assessment as returned by the API.
type Assessment struct {
	URL             string   `json:"url"`
	Name            string   `json:"name"`
	AdaptiveSupport string   `json:"adaptive_support"`
	Description     string   `json:"description"`
	Duration        int      `json:"duration"`
	RemoteSupport   string   `json:"remote_support"`
	TestType        []string `json:"test_type"`
}

// Health is the service health report.
type Health struct {
	Status  string            `json:"status"`
	Version string            `json:"version"`
	Checks  map[string]string `json:"checks"`
}

// Healthy reports whether the service considers itself healthy.
func (h Health) Healthy() bool { return h.Status == "healthy" }

type recommendRequest struct {
	Query string `json:"query"`
}

type recommendResponse struct {
	RecommendedAssessments []Assessment `json:"recommended_assessments"`
}

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
