package commands

import (
	"context"

	"ordering/internal/core/ports"
)

// DefaultUserRoles are granted to self-registered users.
func DefaultUserRoles() []string {
	return []string{ports.RoleViewer, ports.RoleSales}
}

type RegisterUserResponse struct {
	UserID   string
	Username string
	Email    string
}

// RegisterUserCommandHandler creates a user with the default roles.
type RegisterUserCommandHandler struct {
	identity ports.IdentityProvider
}

func NewRegisterUserCommandHandler(identity ports.IdentityProvider) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		identity: identity,
	}
}

func (h *RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) (RegisterUserResponse, error) {
	if err := cmd.Validate(); err != nil {
		return RegisterUserResponse{}, err
	}

	user, err := h.identity.Register(ctx, cmd.Username(), cmd.Email(), cmd.Password(), DefaultUserRoles())
	if err != nil {
		return RegisterUserResponse{}, err
	}

	return RegisterUserResponse{
		UserID:   user.UserID,
		Username: user.Username,
		Email:    user.Email,
	}, nil
}
