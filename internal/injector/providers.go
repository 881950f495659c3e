package injector

import (
	"github.com/google/wire"

	"github.com/koteyur/impulse2d/internal/config"
	"github.com/koteyur/impulse2d/internal/log"
	"github.com/koteyur/impulse2d/internal/simulation"
	"github.com/koteyur/impulse2d/internal/snapshot"
	"github.com/koteyur/impulse2d/pkg/world"
)

var ProviderSet = wire.NewSet(
	config.LoadFile,
	ProvideLogger,
	wire.Bind(new(log.Log), new(*log.Logger)),
	ProvideWorld,
	snapshot.NewHub,
	simulation.New,
)

func ProvideLogger(scene *config.Scene) *log.Logger {
	return log.New(scene.LogLevel())
}

func ProvideWorld(scene *config.Scene, logger log.Log) (*world.World, error) {
	return scene.NewWorld(logger)
}
