package predict

import (
	"context"

	"github.com/kailas-cloud/assessrec/pkg/client"
)

// APIRecommender adapts the HTTP client to Recommender.
type APIRecommender struct {
	Client *client.Client
}

// RecommendURLs returns the URLs of the recommended assessments.
func (a APIRecommender) RecommendURLs(ctx context.Context, query string) ([]string, error) {
	items, err := a.Client.Recommend(ctx, query)
	if err != nil {
		return nil, err
	}
	urls := make([]string, 0, len(items))
	for _, it := range items {
		urls = append(urls, it.URL)
	}
	return urls, nil
}
