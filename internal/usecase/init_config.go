package usecase

import "github.com/aalvaropc/catcount/internal/ports"

type InitConfig struct {
	initializer ports.ConfigInitializer
}

func NewInitConfig(initializer ports.ConfigInitializer) *InitConfig {
	return &InitConfig{initializer: initializer}
}

func (uc *InitConfig) Execute(root string, force bool) (string, error) {
	return uc.initializer.Init(root, force)
}
