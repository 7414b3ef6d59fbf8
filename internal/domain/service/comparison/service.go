package comparison

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"boatmatch/internal/domain/entity"
	"boatmatch/internal/domain/service/similarity"
	"boatmatch/internal/domain/value"
	"boatmatch/pkg/contextx"
	"boatmatch/pkg/logx"
)

const (
	defaultConcurrency = 8
	customScope        = "custom"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type Catalog interface {
	List(ctx context.Context) ([]entity.Boat, error)
	GetByID(ctx context.Context, id string) (entity.Boat, error)
}

// Params select the scoring configuration of a request. Weights and Policy
// override the preset's values when set.
type Params struct {
	Preset  string
	Weights *similarity.Weights
	Policy  similarity.MatchPolicy
}

type RankParams struct {
	Params

	// Limit caps the number of matches; zero means the service default.
	Limit int
}

// Match is one catalog boat ranked against a query boat.
type Match struct {
	Boat   entity.Boat
	Result value.ComparisonResult
}

type Service struct {
	catalog       Catalog
	cache         ResultCache
	metrics       *Metrics
	types         similarity.TypeTable
	defaultPreset string
	policy        similarity.MatchPolicy
	concurrency   int
	defaultLimit  int
}

func NewService(catalog Catalog, cache ResultCache, metrics *Metrics) *Service {
	if cache == nil {
		cache = NopCache{}
	}

	return &Service{
		catalog:       catalog,
		cache:         cache,
		metrics:       metrics,
		types:         similarity.DefaultTypeTable(),
		defaultPreset: similarity.PresetDefault,
		concurrency:   defaultConcurrency,
	}
}

func (s *Service) WithDefaultPreset(name string) *Service {
	s.defaultPreset = name
	return s
}

// WithMatchPolicy overrides the feature matching policy of every preset
// unless a request names its own.
func (s *Service) WithMatchPolicy(policy similarity.MatchPolicy) *Service {
	s.policy = policy
	return s
}

func (s *Service) WithConcurrency(n int) *Service {
	if n > 0 {
		s.concurrency = n
	}

	return s
}

// WithDefaultLimit sets the number of matches returned when a request does not
// ask for a limit. Zero returns the whole catalog.
func (s *Service) WithDefaultLimit(n int) *Service {
	s.defaultLimit = max(0, n)
	return s
}

func (s *Service) WithTypeTable(types similarity.TypeTable) *Service {
	s.types = types
	return s
}

// Compare scores a pair of raw boats. Compare(a, b) and Compare(b, a) share
// one cache entry and return mirrored results with equal scores. The feature
// evidence (common features and labels) is always given from a's side.
func (s *Service) Compare(ctx context.Context, a, b entity.Boat, params Params) (value.ComparisonResult, error) {
	opts, scope, err := s.resolve(params)
	if err != nil {
		return value.ComparisonResult{}, fmt.Errorf("s.resolve: %w", err)
	}

	result, err := s.compare(ctx, similarity.Normalize(a), similarity.Normalize(b), opts, scope)
	if err != nil {
		return value.ComparisonResult{}, fmt.Errorf("s.compare: %w", err)
	}

	return result, nil
}

// Rank compares boat against every catalog boat and returns the best matches
// first. A catalog boat with the same ID as boat is skipped.
func (s *Service) Rank(ctx context.Context, boat entity.Boat, params RankParams) ([]Match, error) {
	started := time.Now()

	opts, scope, err := s.resolve(params.Params)
	if err != nil {
		return nil, fmt.Errorf("s.resolve: %w", err)
	}

	candidates, err := s.catalog.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog.List: %w", err)
	}

	target := similarity.Normalize(boat)

	candidates = lo.Filter(candidates, func(c entity.Boat, _ int) bool {
		return target.ID == "" || c.ID != target.ID
	})

	matches := make([]Match, len(candidates))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for i, candidate := range candidates {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err //nolint:wrapcheck
			}

			result, err := s.compare(gctx, target, similarity.Normalize(candidate), opts, scope)
			if err != nil {
				return fmt.Errorf("s.compare(%s): %w", candidate.ID, err)
			}

			matches[i] = Match{Boat: candidate, Result: result}

			return nil
		})
	}

	if err = g.Wait(); err != nil {
		return nil, fmt.Errorf("g.Wait: %w", err)
	}

	slices.SortStableFunc(matches, compareMatches)

	if limit := s.limit(params.Limit); limit > 0 && limit < len(matches) {
		matches = matches[:limit]
	}

	s.metrics.rankingObserved(metricScope(scope), time.Since(started).Seconds())

	logger(ctx).Debug("catalog ranked",
		logx.FieldBoatID, target.ID,
		logx.FieldPreset, scope,
		logx.FieldCandidates, len(candidates),
		logx.FieldDurationMs, time.Since(started).Milliseconds(),
	)

	return matches, nil
}

// Similar ranks the catalog against one of its own boats.
func (s *Service) Similar(ctx context.Context, id string, params RankParams) ([]Match, error) {
	boat, err := s.catalog.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("catalog.GetByID: %w", err)
	}

	return s.Rank(ctx, boat, params)
}

func (s *Service) compare(
	ctx context.Context,
	a, b value.BoatAttributes,
	opts similarity.Options,
	scope string,
) (value.ComparisonResult, error) {
	key, swapped := PairKey(a, b, scope)
	if swapped {
		a, b = b, a
	}

	// Cached results are stored for the canonical order; b is the caller's
	// first boat when swapped.
	orient := func(r value.ComparisonResult) value.ComparisonResult {
		if !swapped {
			return r
		}

		mirrored := r.Mirror()
		mirrored.Factors.Features.Evidence = similarity.ScoreFeatures(b, a, opts.Policy).Evidence

		return mirrored
	}

	if cached, ok := s.cache.Get(ctx, key); ok {
		s.metrics.cacheLookup(true)
		return orient(cached), nil
	}

	s.metrics.cacheLookup(false)

	result, err := similarity.CompareAttributes(a, b, opts)
	if err != nil {
		return value.ComparisonResult{}, fmt.Errorf("similarity.CompareAttributes: %w", err)
	}

	s.cache.Set(ctx, key, result)
	s.metrics.comparisonComputed(metricScope(scope))

	logger(ctx).Debug("pair compared",
		logx.FieldCacheKey, key,
		logx.FieldOverallScore, result.OverallScore,
	)

	return orient(result), nil
}

// resolve turns request params into engine options and the cache scope they
// belong to.
func (s *Service) resolve(params Params) (similarity.Options, string, error) {
	name := params.Preset
	if name == "" {
		name = s.defaultPreset
	}

	preset, err := similarity.PresetByName(name)
	if err != nil {
		return similarity.Options{}, "", fmt.Errorf("similarity.PresetByName: %w", err)
	}

	opts := preset.Options()
	opts.Types = s.types
	scope := preset.Name

	if params.Weights != nil && *params.Weights != opts.Weights {
		opts.Weights = *params.Weights
		scope = customScope
	}

	policy := cmp.Or(params.Policy, s.policy)
	if policy != "" && policy != opts.Policy {
		opts.Policy = policy
		scope = customScope
	}

	if err = opts.Validate(); err != nil {
		return similarity.Options{}, "", fmt.Errorf("opts.Validate: %w", err)
	}

	if scope == customScope {
		scope = fmt.Sprintf("%s:%s:%s:%s", customScope, preset.Name, opts.Weights, opts.Policy)
	}

	return opts, scope, nil
}

func (s *Service) limit(requested int) int {
	if requested > 0 {
		return requested
	}

	return s.defaultLimit
}

func metricScope(scope string) string {
	if _, err := similarity.PresetByName(scope); err == nil {
		return scope
	}

	return customScope
}

// compareMatches orders by overall score, best first, then by name and ID so
// that ties are stable across runs.
func compareMatches(x, y Match) int {
	return cmp.Or(
		cmp.Compare(y.Result.OverallScore, x.Result.OverallScore),
		cmp.Compare(x.Boat.Name, y.Boat.Name),
		cmp.Compare(x.Boat.ID, y.Boat.ID),
	)
}

// DefaultPreset is the preset used when a request names none.
func (s *Service) DefaultPreset() string {
	return s.defaultPreset
}
