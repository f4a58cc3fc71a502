package user

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"notekeeper/internal/app/server/config"
	"notekeeper/internal/domain/token"
	"notekeeper/internal/domain/user"
)

type Handler struct {
	service    user.Servicer
	tokens     token.Servicer
	auth       config.Auth
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service user.Servicer, tokens token.Servicer, auth config.Auth, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		tokens:     tokens,
		auth:       auth,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.registerOp(), h.register)
	huma.Register(api, h.loginOp(), h.login)
}

func (h *Handler) register(ctx context.Context, input *registerInput) (*authOutput, error) {
	u, err := h.service.Register(ctx, input.Body.Username, input.Body.Password)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrExists):
			return authFailure("User already exists"), nil
		case errors.Is(err, user.ErrInvalidInput):
			return nil, huma.Error422UnprocessableEntity(err.Error())
		default:
			h.log.Error("register failed", "error", err)
			return nil, huma.Error500InternalServerError("Server error")
		}
	}

	signed, err := h.tokens.Issue(u.ID, h.auth.RegisterTokenTTL)
	if err != nil {
		h.log.Error("failed to issue token", "user_id", u.ID, "error", err)
		return nil, huma.Error500InternalServerError("Server error")
	}

	return authSuccess(signed), nil
}

func (h *Handler) login(ctx context.Context, input *loginInput) (*authOutput, error) {
	u, err := h.service.Authenticate(ctx, input.Body.Username, input.Body.Password)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrNotFound):
			return authFailure("User not found"), nil
		case errors.Is(err, user.ErrInvalidAuth):
			return authFailure("Invalid password"), nil
		default:
			h.log.Error("login failed", "error", err)
			return nil, huma.Error500InternalServerError("Server error")
		}
	}

	signed, err := h.tokens.Issue(u.ID, h.auth.LoginTokenTTL)
	if err != nil {
		h.log.Error("failed to issue token", "user_id", u.ID, "error", err)
		return nil, huma.Error500InternalServerError("Server error")
	}

	return authSuccess(signed), nil
}

func authSuccess(token string) *authOutput {
	return &authOutput{
		Status: http.StatusOK,
		Body:   AuthResponse{Success: true, Token: token},
	}
}

// Expected failures answer 400 with the same body shape as success.
func authFailure(message string) *authOutput {
	return &authOutput{
		Status: http.StatusBadRequest,
		Body:   AuthResponse{Success: false, Message: message},
	}
}
