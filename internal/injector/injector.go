//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package injector

import (
	"github.com/google/wire"

	"github.com/sasakali/ecs/internal/core/observability/log"
	"github.com/sasakali/ecs/pkg/ecs"
)

func ProvideLogger() *log.Logger {
	wire.Build(log.Provide)
	return log.New(log.LevelInfo)
}

func ProvideScene() (*ecs.Scene, error) {
	wire.Build(ecs.DefaultConfig, ecs.NewScene)
	return nil, nil
}
