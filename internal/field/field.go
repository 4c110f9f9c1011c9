// Package field assembles a grass field and its models from configuration.
package field

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/meadow/internal/config"
	"github.com/Faultbox/meadow/internal/engine/grass"
	"github.com/Faultbox/meadow/internal/engine/lighting"
	"github.com/Faultbox/meadow/internal/engine/shading"
	"github.com/Faultbox/meadow/internal/engine/sway"
)

// Field is a built mesh plus the models that animate and shade it.
type Field struct {
	Seed    uint64
	Mesh    *grass.Mesh
	Sway    sway.Model
	Shading shading.Model
	Rig     *lighting.Rig
}

// Build validates cfg and generates the field.
func Build(ctx context.Context, cfg *config.Config, log *zap.Logger) (*Field, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	seed := cfg.FieldSeed()
	sw, err := cfg.SwayModel(seed)
	if err != nil {
		return nil, err
	}
	sh, err := cfg.ShadingModel()
	if err != nil {
		return nil, err
	}

	start := time.Now()
	mesh, err := grass.BuildParallel(ctx, cfg.GrassParams(), grass.NewRand(seed), cfg.Field.Workers)
	if err != nil {
		return nil, fmt.Errorf("building grass: %w", err)
	}
	log.Info("grass field built",
		zap.Uint64("seed", seed),
		zap.Int("blades", len(mesh.Blades)),
		zap.Int("vertices", mesh.VertexCount()),
		zap.Int("triangles", mesh.TriangleCount()),
		zap.Duration("elapsed", time.Since(start)),
	)

	return &Field{
		Seed:    seed,
		Mesh:    mesh,
		Sway:    sw,
		Shading: sh,
		Rig:     cfg.Rig(),
	}, nil
}
