package consensus_fx

import (
	"go.uber.org/fx"

	"hopa/internal/api/controllers"
	"hopa/internal/services"
)

var Module = fx.Provide(
	services.NewConflictQuestionService,
	services.NewEquipmentOptionService,
	services.NewConsensusService,
	controllers.NewConsensusController,
)
