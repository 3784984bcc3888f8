package report

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/ht-tools/housing-atlas/pkg/models/domain"
	"github.com/ht-tools/housing-atlas/pkg/services/geo"
	"github.com/ht-tools/housing-atlas/pkg/services/satisfaction"
	"github.com/ht-tools/housing-atlas/pkg/store/geojson"
	"github.com/ht-tools/housing-atlas/pkg/store/survey"
	"github.com/rs/zerolog"
)

// ErrUnknownDimension marks a request for a grouping dimension the
// controller does not know. Handlers translate it to a client error.
var ErrUnknownDimension = errors.New("unknown dimension")

const (
	DimensionHousing    = "housing"
	DimensionIncome     = "income"
	DimensionRentBurden = "rent_burden"
	DimensionDistrict   = "district"
)

// Options selects what a report run includes. Levels narrows the
// demographic sections to the chosen satisfaction labels (the overview,
// situation cross-tab and reason ranking always cover the full survey);
// an empty list keeps every label. IncludeDistricts adds the geographic
// join, which requires the boundary dataset.
type Options struct {
	Levels           []domain.SatisfactionLevel
	TopReasons       int
	IncludeDistricts bool
}

// Controller assembles satisfaction aggregates for the HTTP and CLI
// surfaces. Every method recomputes from the store's current rows; only
// the boundary dataset is cached, loaded once for the process lifetime.
type Controller interface {
	Overview(ctx context.Context) (domain.Overview, error)
	CrossTab(ctx context.Context, dimension string, levels []domain.SatisfactionLevel) (domain.CrossTab, error)
	Reasons(ctx context.Context, top int) ([]domain.ReasonCount, error)
	Groups(ctx context.Context, dimension string) (domain.GroupSummary, error)
	Districts(ctx context.Context) (domain.DistrictJoin, error)
	BuildReport(ctx context.Context, opts Options) (*domain.Report, error)
}

type Dependencies struct {
	Rows       survey.Store
	Boundaries geojson.Loader
	Aliases    geo.AliasTable
	Scale      satisfaction.Scale
	Reasons    satisfaction.ReasonDictionary
}

type controller struct {
	deps Dependencies

	mu       sync.Mutex
	features *geojson.FeatureCollection
}

func NewController(deps Dependencies) Controller {
	return &controller{deps: deps}
}

func (c *controller) Overview(ctx context.Context) (domain.Overview, error) {
	rows, err := c.deps.Rows.GetRows(ctx)
	if err != nil {
		return domain.Overview{}, fmt.Errorf("load survey rows: %w", err)
	}
	return satisfaction.Overview(rows, c.deps.Scale), nil
}

func (c *controller) CrossTab(
	ctx context.Context,
	dimension string,
	levels []domain.SatisfactionLevel,
) (domain.CrossTab, error) {
	dim, err := dimensionFunc(dimension)
	if err != nil {
		return domain.CrossTab{}, err
	}

	rows, err := c.deps.Rows.GetRows(ctx)
	if err != nil {
		return domain.CrossTab{}, fmt.Errorf("load survey rows: %w", err)
	}
	if dimension == DimensionRentBurden {
		rows = satisfaction.Renters(rows)
	}
	if len(levels) == 0 {
		levels = domain.SatisfactionLevels()
	}
	return satisfaction.CrossTabulate(rows, dimension, dim, levels), nil
}

func (c *controller) Reasons(ctx context.Context, top int) ([]domain.ReasonCount, error) {
	rows, err := c.deps.Rows.GetRows(ctx)
	if err != nil {
		return nil, fmt.Errorf("load survey rows: %w", err)
	}
	counts := satisfaction.CountReasons(rows, c.deps.Reasons)
	return satisfaction.TopReasons(counts, top), nil
}

func (c *controller) Groups(ctx context.Context, dimension string) (domain.GroupSummary, error) {
	rows, err := c.deps.Rows.GetRows(ctx)
	if err != nil {
		return nil, fmt.Errorf("load survey rows: %w", err)
	}
	return c.groupsFor(rows, dimension)
}

func (c *controller) groupsFor(rows []domain.SurveyRow, dimension string) (domain.GroupSummary, error) {
	scale := c.deps.Scale
	switch dimension {
	case DimensionIncome:
		return satisfaction.GroupMean(
			rows, satisfaction.ByIncomeBracket, satisfaction.OrdinalScore(scale), nil), nil
	case DimensionRentBurden:
		return satisfaction.GroupMean(
			satisfaction.Renters(rows),
			satisfaction.ByRentBurden,
			satisfaction.OrdinalScore(scale),
			satisfaction.RentBurdenOrder(),
		), nil
	case DimensionDistrict:
		return satisfaction.GroupMean(
			rows, satisfaction.ByDistrict, satisfaction.WeightScore(scale), nil), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDimension, dimension)
	}
}

func (c *controller) Districts(ctx context.Context) (domain.DistrictJoin, error) {
	rows, err := c.deps.Rows.GetRows(ctx)
	if err != nil {
		return domain.DistrictJoin{}, fmt.Errorf("load survey rows: %w", err)
	}
	return c.joinDistricts(ctx, rows)
}

func (c *controller) joinDistricts(ctx context.Context, rows []domain.SurveyRow) (domain.DistrictJoin, error) {
	fc, err := c.boundaries(ctx)
	if err != nil {
		return domain.DistrictJoin{}, err
	}

	byDistrict := satisfaction.GroupMean(
		rows, satisfaction.ByDistrict, satisfaction.WeightScore(c.deps.Scale), nil)
	join := geo.Join(byDistrict, c.deps.Aliases, fc)

	if len(join.Unmatched) > 0 {
		zerolog.Ctx(ctx).Warn().
			Strs("districts", join.Unmatched).
			Msg("survey districts missing from the alias table")
	}
	return join, nil
}

// boundaries loads the boundary dataset on first use and keeps it for the
// process lifetime. A failed load is not cached, so a dataset that shows
// up later still gets picked up.
func (c *controller) boundaries(ctx context.Context) (*geojson.FeatureCollection, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.features != nil {
		return c.features, nil
	}

	fc, err := c.deps.Boundaries.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load boundaries: %w", err)
	}
	c.features = fc
	return fc, nil
}

func (c *controller) BuildReport(ctx context.Context, opts Options) (*domain.Report, error) {
	rows, err := c.deps.Rows.GetRows(ctx)
	if err != nil {
		return nil, fmt.Errorf("load survey rows: %w", err)
	}

	scale := c.deps.Scale
	levels := domain.SatisfactionLevels()
	filtered := satisfaction.FilterByLevels(rows, opts.Levels)
	renters := satisfaction.Renters(filtered)

	top := opts.TopReasons
	if top <= 0 {
		top = 3
	}
	reasons := satisfaction.CountReasons(rows, c.deps.Reasons)

	incomeGroups := satisfaction.GroupMean(
		filtered, satisfaction.ByIncomeBracket, satisfaction.OrdinalScore(scale), nil)
	burdenGroups := satisfaction.GroupMean(
		renters, satisfaction.ByRentBurden, satisfaction.OrdinalScore(scale),
		satisfaction.RentBurdenOrder())
	districtGroups := satisfaction.GroupMean(
		filtered, satisfaction.ByDistrict, satisfaction.WeightScore(scale), nil)

	rep := &domain.Report{
		Overview: satisfaction.Overview(rows, scale),
		SituationCrossTab: satisfaction.CrossTabulate(
			rows, DimensionHousing, satisfaction.BySituation, levels),
		RentBurdenCrossTab: satisfaction.CrossTabulate(
			renters, DimensionRentBurden, satisfaction.ByRentBurden, levels),
		Reasons:            reasons,
		TopReasons:         satisfaction.TopReasons(reasons, top),
		IncomeGroups:       incomeGroups,
		RentBurdenGroups:   burdenGroups,
		RentBurdenExtremes: satisfaction.Extremes(burdenGroups),
		DistrictGroups:     districtGroups,
		Legend:             geo.Legend(),
	}

	if opts.IncludeDistricts {
		join, err := c.joinDistricts(ctx, filtered)
		if err != nil {
			return nil, err
		}
		rep.Districts = &join
	}
	return rep, nil
}

func dimensionFunc(dimension string) (satisfaction.Dimension, error) {
	switch dimension {
	case DimensionHousing:
		return satisfaction.BySituation, nil
	case DimensionIncome:
		return satisfaction.ByIncomeBracket, nil
	case DimensionRentBurden:
		return satisfaction.ByRentBurden, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDimension, dimension)
	}
}
