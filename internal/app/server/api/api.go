//POST /api/auth/register      # Регистрация (публичный)
//POST /api/auth/login         # Логин (публичный)
//POST /api/notes              # Создать заметку (auth)
//GET  /api/notes              # Активные заметки (auth)
//GET  /api/notes/archive      # Архив (auth)
//GET  /api/notes/trash        # Корзина (auth)
//GET  /api/notes/search       # Поиск по заголовку (auth)
//PUT  /api/notes/{id}         # Обновить заметку (auth)
//DELETE /api/notes/{id}       # Удалить заметку (auth)

package api

import (
	healthAPI "notekeeper/internal/app/server/api/http/health"
	"notekeeper/internal/app/server/api/http/middleware"
	"notekeeper/internal/app/server/api/http/middleware/auth"
	"notekeeper/internal/app/server/api/http/middleware/logger"
	noteAPI "notekeeper/internal/app/server/api/http/note"
	userAPI "notekeeper/internal/app/server/api/http/user"
	"notekeeper/internal/app/server/config"
	"notekeeper/internal/domain/note"
	"notekeeper/internal/domain/token"
	"notekeeper/internal/domain/user"
	"notekeeper/internal/infrastructure/storage"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"
)

type Handlers struct {
	Health *healthAPI.Handler
	User   *userAPI.Handler
	Note   *noteAPI.Handler
}

// New создает *chi.Mux со всеми операциями через huma.Register
func New(cfg *config.Config, store storage.Store, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()

	humaConfig := huma.DefaultConfig("Notekeeper API", "1.0.0")
	humaConfig.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {Type: "http", Scheme: "bearer"},
	}

	API := humachi.New(mux, humaConfig)

	h := handlers(cfg, store, log)
	h.Health.SetupRoutes(API)
	h.User.SetupRoutes(API)
	h.Note.SetupRoutes(API)

	return mux
}

func handlers(cfg *config.Config, store storage.Store, log *slog.Logger) *Handlers {
	tokenService := token.NewService(cfg.Auth.Secret, log)
	authMW := auth.New(tokenService, log)
	loggerMW := logger.New(log)
	middlewares := middleware.NewContainer()

	middlewares.Add(loggerMW.Middleware())
	healthHandler := healthAPI.NewHandler(log, middlewares.GetAllAndClear())

	userService := user.NewService(store.Users(), user.NewCredentialsValidator(), log)
	middlewares.Add(loggerMW.Middleware())
	userHandler := userAPI.NewHandler(userService, tokenService, cfg.Auth, log, middlewares.GetAllAndClear())

	noteService := note.NewService(store.Notes(), log)
	middlewares.Add(authMW.Middleware())
	middlewares.Add(loggerMW.Middleware())
	noteHandler := noteAPI.NewHandler(noteService, log, middlewares.GetAllAndClear())

	return &Handlers{
		Health: healthHandler,
		User:   userHandler,
		Note:   noteHandler,
	}
}
