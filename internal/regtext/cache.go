// Package regtext loads the regulation article texts backing the evidence
// modal. The load is strictly best-effort: the texts are a transparency aid,
// not required data, so every failure degrades to "not available" instead of
// surfacing a diagnostic.
package regtext

import "context"

// Fetcher is the slice of the api client the cache needs.
type Fetcher interface {
	RegulationTexts(ctx context.Context) (map[string]string, error)
}

// Load fetches the article id to text mapping. On any failure (network,
// non-2xx, malformed payload) it returns an empty non-nil map and no error;
// downstream a missing key is indistinguishable from a failed load.
func Load(ctx context.Context, f Fetcher) map[string]string {
	texts, err := f.RegulationTexts(ctx)
	if err != nil || texts == nil {
		return map[string]string{}
	}
	return texts
}

// FallbackMessage is the fixed evidence message for a check whose article, or
// article text, is unavailable.
func FallbackMessage(check string) string {
	return "Original text not available for " + check
}
