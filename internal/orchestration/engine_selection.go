package orchestration

import (
	"github.com/agbru/mpcalc/internal/config"
	"github.com/agbru/mpcalc/internal/engine"
)

// GetEnginesToRun determines which engines run the configured operation.
// Operations that no engine implements run once on the pure engine. The
// "all" selection returns every registered engine in sorted order.
//
// Parameters:
//   - cfg: The application configuration containing the engine selection.
//   - factory: The engine registry.
//
// Returns:
//   - []engine.Engine: The engines to run.
//   - error: An error when the selected engine is unknown.
func GetEnginesToRun(cfg config.AppConfig, factory engine.Factory) ([]engine.Engine, error) {
	if !UsesEngine(cfg.Op) {
		e, err := factory.Get(engine.PureName)
		if err != nil {
			return nil, err
		}
		return []engine.Engine{e}, nil
	}
	if cfg.Engine == config.AllEngines {
		return factory.GetAll(), nil
	}
	e, err := factory.Get(cfg.Engine)
	if err != nil {
		return nil, err
	}
	return []engine.Engine{e}, nil
}
