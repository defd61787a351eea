//go:build wireinject
// +build wireinject

package app

import "github.com/google/wire"

func InitializeApplication(cfg Config) (*Application, error) {
	wire.Build(AppSet)
	return nil, nil
}
