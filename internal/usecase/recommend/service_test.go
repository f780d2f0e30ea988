package recommend

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/kailas-cloud/assessrec/internal/domain"
	"github.com/kailas-cloud/assessrec/internal/domain/assessment"
)

// --- Mocks ---

type mockCatalog struct {
	records []assessment.Record
	err     error
	calls   int
}

func (m *mockCatalog) FetchAll(_ context.Context) ([]assessment.Record, error) {
	m.calls++
	return m.records, m.err
}

func rec(url, name, desc string, types ...string) assessment.Record {
	return assessment.Record{
		assessment.FieldURL:         url,
		assessment.FieldName:        name,
		assessment.FieldDescription: desc,
		assessment.FieldTestType:    types,
	}
}

func urls(res Result) []string {
	out := make([]string, len(res.Recommendations))
	for i, p := range res.Recommendations {
		out[i] = p.URL
	}
	return out
}

// --- Tests ---

func TestRecommend_TwoRecordScenario(t *testing.T) {
	cat := &mockCatalog{records: []assessment.Record{
		rec("B", "Team Collaboration Test", "", "Personality"),
		rec("A", "Python Coding Test", "assess python skills", "Knowledge"),
	}}
	svc := New(cat)

	res, err := svc.Recommend(context.Background(), "python collaborate test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := urls(res); !reflect.DeepEqual(got, []string{"A", "B"}) {
		t.Fatalf("expected [A B], got %v", got)
	}
	if res.Rebalanced {
		t.Error("rebalance must not trigger with two candidates")
	}
	if res.FloorApplied {
		t.Error("floor must not trigger with two candidates")
	}
	if res.CatalogSize != 2 {
		t.Errorf("expected catalog size 2, got %d", res.CatalogSize)
	}
}

func TestRecommend_EmptyCatalog(t *testing.T) {
	svc := New(&mockCatalog{})

	res, err := svc.Recommend(context.Background(), "python")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Recommendations == nil {
		t.Fatal("expected non-nil empty slice")
	}
	if len(res.Recommendations) != 0 {
		t.Errorf("expected 0 results, got %d", len(res.Recommendations))
	}
}

func genericRecords(n int) []assessment.Record {
	out := make([]assessment.Record, n)
	for i := range out {
		out[i] = rec(fmt.Sprintf("u%d", i), fmt.Sprintf("Assessment %d", i), "", "Ability")
	}
	return out
}

func TestRecommend_NonMatchingQuery(t *testing.T) {
	tests := []struct {
		name        string
		catalogSize int
		wantLen     int
		wantFloor   bool
	}{
		{"below floor", 4, 0, false},
		{"exactly five", 5, 5, true},
		{"six", 6, 6, true},
		{"capped at ten", 12, 10, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := New(&mockCatalog{records: genericRecords(tc.catalogSize)})

			res, err := svc.Recommend(context.Background(), "xyz nonmatching query")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(res.Recommendations) != tc.wantLen {
				t.Fatalf("expected %d results, got %d", tc.wantLen, len(res.Recommendations))
			}
			if res.FloorApplied != tc.wantFloor {
				t.Errorf("expected floor %v, got %v", tc.wantFloor, res.FloorApplied)
			}
			if res.Recommendations == nil {
				t.Error("expected non-nil slice")
			}
			// Zero scores keep catalog order.
			for i, p := range res.Recommendations {
				if want := fmt.Sprintf("u%d", i); p.URL != want {
					t.Errorf("position %d: expected %s, got %s", i, want, p.URL)
				}
			}
		})
	}
}

func TestRecommend_LengthCapped(t *testing.T) {
	records := make([]assessment.Record, 25)
	for i := range records {
		records[i] = rec(fmt.Sprintf("p%d", i), fmt.Sprintf("Python Test %d", i), "", "Knowledge & Skills")
	}
	svc := New(&mockCatalog{records: records})

	res, err := svc.Recommend(context.Background(), "python")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Recommendations) != maxResults {
		t.Errorf("expected %d results, got %d", maxResults, len(res.Recommendations))
	}
}

func TestRecommend_Deterministic(t *testing.T) {
	records := append(genericRecords(3),
		rec("k1", "Java Test", "", "Knowledge & Skills"),
		rec("k2", "Java Advanced", "", "Knowledge & Skills"),
		rec("b1", "Team Profile", "", "Personality & Behavior"),
	)
	svc := New(&mockCatalog{records: records})

	first, err := svc.Recommend(context.Background(), "java team")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for range 5 {
		next, err := svc.Recommend(context.Background(), "java team")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(first, next) {
			t.Fatalf("results differ between runs:\n%v\n%v", urls(first), urls(next))
		}
	}
}

func TestRecommend_CaseInsensitive(t *testing.T) {
	records := []assessment.Record{
		rec("a", "Python (New)", "Multi-choice test for Python programmers", "Knowledge & Skills"),
		rec("b", "SQL (New)", "", "Simulations"),
	}
	svc := New(&mockCatalog{records: records})

	lower, err := svc.Recommend(context.Background(), "python")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	upper, err := svc.Recommend(context.Background(), "PYTHON")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(lower, upper) {
		t.Errorf("expected identical results, got %v and %v", urls(lower), urls(upper))
	}
	if got := urls(lower); !reflect.DeepEqual(got, []string{"a"}) {
		t.Errorf("expected [a], got %v", got)
	}
}

// multiDomainCatalog returns knowledge records scoring 43 and behavior and
// generic records scoring 10 for the query "python developer with team skills".
func multiDomainCatalog(knowledge, behavior, generic int) []assessment.Record {
	var out []assessment.Record
	for i := range knowledge {
		out = append(out, rec(fmt.Sprintf("k%d", i), fmt.Sprintf("Python Test %d", i), "", "Knowledge & Skills"))
	}
	for i := range behavior {
		out = append(out, rec(fmt.Sprintf("b%d", i), fmt.Sprintf("Team Profile %d", i), "", "Personality & Behavior"))
	}
	for i := range generic {
		out = append(out, rec(fmt.Sprintf("g%d", i), fmt.Sprintf("Generic Skills Check %d", i), "", "Ability"))
	}
	return out
}

const multiDomainQuery = "python developer with team skills"

func TestRecommend_RebalanceTriggers(t *testing.T) {
	svc := New(&mockCatalog{records: multiDomainCatalog(4, 3, 1)})

	res, err := svc.Recommend(context.Background(), multiDomainQuery)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Rebalanced {
		t.Fatal("expected rebalance with eight positive candidates")
	}
	want := []string{"k0", "k1", "k2", "k3", "b0", "b1", "b2"}
	if got := urls(res); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestRecommend_RebalanceBelowThreshold(t *testing.T) {
	svc := New(&mockCatalog{records: multiDomainCatalog(2, 2, 1)})

	res, err := svc.Recommend(context.Background(), multiDomainQuery)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Rebalanced {
		t.Fatal("rebalance must not trigger with five candidates")
	}
	want := []string{"k0", "k1", "b0", "b1", "g0"}
	if got := urls(res); !reflect.DeepEqual(got, want) {
		t.Errorf("expected unmodified list %v, got %v", want, got)
	}
}

func TestRecommend_FloorAfterRebalanceUsesCandidates(t *testing.T) {
	svc := New(&mockCatalog{records: multiDomainCatalog(2, 2, 4)})

	res, err := svc.Recommend(context.Background(), multiDomainQuery)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Rebalanced || !res.FloorApplied {
		t.Fatalf("expected rebalance and floor, got rebalanced=%v floor=%v", res.Rebalanced, res.FloorApplied)
	}
	want := []string{"k0", "k1", "b0", "b1", "g0", "g1", "g2", "g3"}
	if got := urls(res); !reflect.DeepEqual(got, want) {
		t.Errorf("expected pre-rebalance candidates %v, got %v", want, got)
	}
}

func TestRecommend_SingleDomainNoRebalance(t *testing.T) {
	svc := New(&mockCatalog{records: multiDomainCatalog(4, 3, 1)})

	res, err := svc.Recommend(context.Background(), "python developer skills")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Rebalanced {
		t.Error("rebalance requires both technical and behavioral tokens")
	}
}

func TestRecommend_EmptyQuery(t *testing.T) {
	cat := &mockCatalog{records: genericRecords(3)}
	svc := New(cat)

	for _, q := range []string{"", "   ", "\t\n"} {
		_, err := svc.Recommend(context.Background(), q)
		if !errors.Is(err, domain.ErrEmptyQuery) {
			t.Errorf("query %q: expected ErrEmptyQuery, got %v", q, err)
		}
	}
	if cat.calls != 0 {
		t.Errorf("catalog must not be read for an empty query, got %d calls", cat.calls)
	}
}

func TestRecommend_CatalogError(t *testing.T) {
	storeErr := errors.New("connection refused")
	svc := New(&mockCatalog{err: storeErr})

	_, err := svc.Recommend(context.Background(), "python")
	if !errors.Is(err, domain.ErrCatalogUnavailable) {
		t.Errorf("expected ErrCatalogUnavailable, got %v", err)
	}
	if !errors.Is(err, storeErr) {
		t.Errorf("expected wrapped store error, got %v", err)
	}
}

func TestRecommend_DoesNotMutateCatalog(t *testing.T) {
	records := []assessment.Record{
		rec("a", "Python", "", "Knowledge & Skills"),
		{assessment.FieldURL: "b"},
	}
	svc := New(&mockCatalog{records: records})

	if _, err := svc.Recommend(context.Background(), "python"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := records[1][assessment.FieldName]; ok {
		t.Error("defaults must not be written back into catalog records")
	}
}

func TestRecommend_PositiveScoresUnlessFloor(t *testing.T) {
	records := append(multiDomainCatalog(6, 0, 0), genericRecords(6)...)
	svc := New(&mockCatalog{records: records})

	res, err := svc.Recommend(context.Background(), "python")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.FloorApplied {
		t.Fatal("floor must not apply with six matches")
	}
	for _, p := range res.Recommendations {
		if p.URL[0] != 'k' {
			t.Errorf("unexpected zero-score entry %s", p.URL)
		}
	}
}
