package pipeline

import (
	"time"

	"go.uber.org/zap"

	"vintedgen/internal"
	"vintedgen/internal/describe"
	"vintedgen/internal/extract"
	"vintedgen/internal/listing"
	"vintedgen/internal/normalize"
	"vintedgen/internal/pricing"
	"vintedgen/internal/profile"
	"vintedgen/internal/title"
)

// Generator runs the full listing generation chain: extract, normalize,
// title, description, pricing, validated listing. It is the only component
// that logs; the leaf packages stay silent.
type Generator struct {
	registry *profile.Registry
	log      *zap.Logger
}

func NewGenerator(registry *profile.Registry, log *zap.Logger) *Generator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Generator{registry: registry, log: log}
}

// Request is one generation call: the raw AI response text, the profile to
// interpret it under, and optional per-field UI overrides.
type Request struct {
	RawText    string
	ProfileKey string
	Overrides  map[string]any
}

// Result carries the validated listing plus the optional price
// recommendation.
type Result struct {
	Listing *listing.Listing
	Price   *pricing.Recommendation
}

func (g *Generator) Generate(req Request) (Result, error) {
	start := time.Now()

	p, err := g.registry.Get(req.ProfileKey)
	if err != nil {
		return Result{}, err
	}

	raw, err := extract.Extract(req.RawText)
	if err != nil {
		g.log.Warn("extraction failed",
			zap.String("profile", req.ProfileKey),
			zap.Error(err))
		return Result{}, err
	}

	fields := normalize.Normalize(raw, req.Overrides, p)
	builtTitle := title.Build(fields, p)
	description := describe.Build(fields, normalize.RawComposition(raw, req.Overrides), p)

	l, err := listing.FromFields(fields, builtTitle, description)
	if err != nil {
		g.log.Warn("listing rejected",
			zap.String("profile", req.ProfileKey),
			zap.Error(err))
		return Result{}, err
	}

	price := pricing.Recommend(fields, p)

	logFields := []zap.Field{
		zap.String("profile", req.ProfileKey),
		zap.String("title", l.Title()),
		zap.String("sku_status", skuStatus(fields)),
		zap.Duration("took", time.Since(start)),
	}
	if price != nil {
		logFields = append(logFields, zap.Float64("price", price.Price))
	}
	g.log.Info("listing generated", logFields...)

	return Result{Listing: l, Price: price}, nil
}

func skuStatus(f internal.Fields) string {
	if f.SKUStatus == nil {
		return ""
	}
	return string(*f.SKUStatus)
}
