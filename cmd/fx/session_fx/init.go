package session_fx

import (
	"go.uber.org/fx"

	"hopa/internal/api/controllers"
	"hopa/internal/services"
	mem "hopa/pkg/memcache"
)

var Module = fx.Provide(
	provideSessionStore,
	services.NewSessionService,
	controllers.NewSessionController,
)

func provideSessionStore() mem.SessionStore {
	return mem.NewQuizSessions()
}
