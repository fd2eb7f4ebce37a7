package intelligence

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"kingdom/internal/core"
)

var (
	// ErrTestNotFound is returned for an unknown A/B test id.
	ErrTestNotFound = errors.New("A/B test not found")
	// ErrVariantNotFound is returned for an unknown variant id within a test.
	ErrVariantNotFound = errors.New("variant not found")
	// ErrNoVariants is returned when a test is created without content.
	ErrNoVariants = errors.New("an A/B test needs at least one non-empty variant")
)

// ConversionWeight is how many engagements a conversion is worth when
// comparing variants.
const ConversionWeight = 5.0

// ABTest is a named set of content variants being compared.
type ABTest struct {
	ID        string               `json:"id"`
	Name      string               `json:"name"`
	Variants  []core.ABTestVariant `json:"variants"`
	CreatedAt time.Time            `json:"createdAt"`
}

func (t *ABTest) clone() ABTest {
	out := *t
	out.Variants = append([]core.ABTestVariant(nil), t.Variants...)
	return out
}

type registry struct {
	mu   sync.RWMutex
	byID map[string]*ABTest
}

func newRegistry() *registry {
	return &registry{byID: make(map[string]*ABTest)}
}

// CreateABTest registers a test with one variant per non-empty content string.
func (s *Service) CreateABTest(name string, contents []string) (ABTest, error) {
	test := &ABTest{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(name),
		CreatedAt: time.Now().UTC(),
	}
	for _, c := range contents {
		if strings.TrimSpace(c) == "" {
			continue
		}
		test.Variants = append(test.Variants, core.ABTestVariant{
			ID:      uuid.NewString(),
			Name:    variantName(len(test.Variants)),
			Content: c,
		})
	}
	if len(test.Variants) == 0 {
		return ABTest{}, ErrNoVariants
	}
	if test.Name == "" {
		test.Name = fmt.Sprintf("Test %s", test.ID[:8])
	}

	s.tests.mu.Lock()
	s.tests.byID[test.ID] = test
	s.tests.mu.Unlock()
	return test.clone(), nil
}

// ABTest returns a copy of a registered test.
func (s *Service) ABTest(testID string) (ABTest, error) {
	s.tests.mu.RLock()
	defer s.tests.mu.RUnlock()
	test, ok := s.tests.byID[testID]
	if !ok {
		return ABTest{}, fmt.Errorf("%w: %s", ErrTestNotFound, testID)
	}
	return test.clone(), nil
}

// ABTests lists registered tests, oldest first.
func (s *Service) ABTests() []ABTest {
	s.tests.mu.RLock()
	out := make([]ABTest, 0, len(s.tests.byID))
	for _, t := range s.tests.byID {
		out = append(out, t.clone())
	}
	s.tests.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

// RecordMetrics adds observed metrics to a variant. Counters accumulate.
func (s *Service) RecordMetrics(testID, variantID string, m core.VariantMetrics) error {
	s.tests.mu.Lock()
	defer s.tests.mu.Unlock()

	test, ok := s.tests.byID[testID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrTestNotFound, testID)
	}
	for i := range test.Variants {
		if test.Variants[i].ID != variantID {
			continue
		}
		v := &test.Variants[i].Metrics
		v.Impressions += m.Impressions
		v.Engagement += m.Engagement
		v.Clicks += m.Clicks
		v.Conversions += m.Conversions
		return nil
	}
	return fmt.Errorf("%w: %s", ErrVariantNotFound, variantID)
}

// ABTestResult picks the variant with the best weighted engagement rate and
// reports confidence in [0,1] that it beats the runner-up. The winner is always
// one of the returned variants.
func (s *Service) ABTestResult(testID string) (core.ABTestResult, error) {
	test, err := s.ABTest(testID)
	if err != nil {
		return core.ABTestResult{}, err
	}

	best, second := 0, -1
	for i := 1; i < len(test.Variants); i++ {
		r := score(test.Variants[i].Metrics)
		switch {
		case r > score(test.Variants[best].Metrics):
			second, best = best, i
		case second < 0 || r > score(test.Variants[second].Metrics):
			second = i
		}
	}

	result := core.ABTestResult{
		TestID:   test.ID,
		Variants: test.Variants,
		Winner:   test.Variants[best].ID,
	}
	if second >= 0 {
		result.Confidence = confidence(test.Variants[best].Metrics, test.Variants[second].Metrics)
	}
	return result, nil
}

// score is the weighted engagement rate per impression.
func score(m core.VariantMetrics) float64 {
	if m.Impressions <= 0 {
		return 0
	}
	return (float64(m.Engagement) + float64(m.Clicks) + ConversionWeight*float64(m.Conversions)) / float64(m.Impressions)
}

// confidence runs a two-proportion z-test on engagement per impression and
// returns the two-sided confidence that the rates differ.
func confidence(a, b core.VariantMetrics) float64 {
	if a.Impressions <= 0 || b.Impressions <= 0 {
		return 0
	}
	na, nb := float64(a.Impressions), float64(b.Impressions)
	pa := math.Min(float64(a.Engagement)/na, 1)
	pb := math.Min(float64(b.Engagement)/nb, 1)

	pooled := (pa*na + pb*nb) / (na + nb)
	se := math.Sqrt(pooled * (1 - pooled) * (1/na + 1/nb))
	if se == 0 || math.IsNaN(se) {
		return 0
	}
	z := math.Abs(pa-pb) / se
	return math.Erf(z / math.Sqrt2)
}

func variantName(i int) string {
	if i < 26 {
		return "Variant " + string(rune('A'+i))
	}
	return fmt.Sprintf("Variant %d", i+1)
}
