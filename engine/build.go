package engine

import (
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/skii/catalog"
	"github.com/lixenwraith/skii/config"
	"github.com/lixenwraith/skii/vmath"
	"github.com/lixenwraith/skii/world"
)

// NewGame wires a world and session from configuration. The seed string is
// hashed; an empty one picks a time-based seed, which is logged so a run can
// be replayed.
func NewGame(cat *catalog.Catalog, cfg config.Config, log logrus.FieldLogger) *Session {
	seed := vmath.SeedFromString(cfg.Generation.Seed)

	placement := world.PlacementReroll
	if !cfg.Generation.RerollPlacedType {
		placement = world.PlacementAccepted
	}

	w := world.New(cat, vmath.NewFastRand(seed),
		world.WithLogger(log),
		world.WithGravity(cfg.Sim.Gravity),
		world.WithObjectRadius(cfg.Generation.ObjectRadius),
		world.WithPlacement(placement),
	)

	log.WithFields(logrus.Fields{
		"seed":    seed,
		"tiles":   cat.TileCount(),
		"objects": cat.ObjectCount(),
	}).Info("game created")

	return NewSession(w, ParamsFrom(cfg), WithSessionLogger(log))
}
