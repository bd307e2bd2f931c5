package identity

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"strings"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"
)

// Provider implements ports.IdentityProvider.
type Provider struct {
	store  UserStore
	hasher Hasher
	clock  ports.Clock
	logger *slog.Logger
}

func NewProvider(store UserStore, hasher Hasher, clock ports.Clock, logger *slog.Logger) *Provider {
	return &Provider{
		store:  store,
		hasher: hasher,
		clock:  clock,
		logger: logger.With("component", "identity"),
	}
}

var _ ports.IdentityProvider = (*Provider)(nil)

// VerifyCredentials looks the user up by email when login contains '@', by user name otherwise.
func (p *Provider) VerifyCredentials(ctx context.Context, login, password string) (ports.Identity, error) {
	var (
		user User
		err  error
	)
	if strings.Contains(login, "@") {
		user, err = p.store.FindByEmail(ctx, login)
	} else {
		user, err = p.store.FindByUsername(ctx, login)
	}
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			p.logger.InfoContext(ctx, "login rejected", "reason", "unknown user")
			return ports.Identity{}, errs.NewUnauthenticatedError("invalid credentials")
		}
		return ports.Identity{}, err
	}

	if !p.hasher.Matches(user.PasswordHash, password) {
		p.logger.InfoContext(ctx, "login rejected", "reason", "wrong password", "user_id", user.ID)
		return ports.Identity{}, errs.NewUnauthenticatedError("invalid credentials")
	}

	return toIdentity(user), nil
}

func (p *Provider) FindByID(ctx context.Context, userID string) (ports.Identity, error) {
	user, err := p.store.FindByID(ctx, userID)
	if err != nil {
		return ports.Identity{}, err
	}
	return toIdentity(user), nil
}

// Register creates a user. Taken names and emails, weak passwords and unknown roles are
// reported as errs.ValueIsInvalidError.
func (p *Provider) Register(
	ctx context.Context,
	username, email, password string,
	roles []string,
) (ports.Identity, error) {
	if err := errors.Join(
		ValidatePassword(password),
		validateRoles(roles),
	); err != nil {
		return ports.Identity{}, err
	}

	if err := p.ensureAvailable(ctx, username, email); err != nil {
		return ports.Identity{}, err
	}

	hash, err := p.hasher.Hash(password)
	if err != nil {
		return ports.Identity{}, err
	}

	user := User{
		ID:           kernel.NewUUID().String(),
		Username:     strings.TrimSpace(username),
		Email:        strings.ToLower(strings.TrimSpace(email)),
		PasswordHash: hash,
		Roles:        slices.Clone(roles),
		CreatedAtUTC: p.clock.Now(),
	}
	if err = p.store.Create(ctx, user); err != nil {
		return ports.Identity{}, err
	}

	p.logger.InfoContext(ctx, "user registered", "user_id", user.ID, "roles", user.Roles)
	return toIdentity(user), nil
}

func (p *Provider) ensureAvailable(ctx context.Context, username, email string) error {
	if _, err := p.store.FindByUsername(ctx, username); err == nil {
		return errs.NewValueIsInvalidErrorWithCause("username", errors.New("is already taken"))
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	if _, err := p.store.FindByEmail(ctx, email); err == nil {
		return errs.NewValueIsInvalidErrorWithCause("email", errors.New("is already taken"))
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	return nil
}

func validateRoles(roles []string) error {
	known := ports.AllRoles()
	for _, role := range roles {
		if !slices.Contains(known, role) {
			return errs.NewValueIsInvalidErrorWithCause("roles", errors.New("unknown role "+role))
		}
	}
	return nil
}

func toIdentity(user User) ports.Identity {
	return ports.Identity{
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
		Roles:    slices.Clone(user.Roles),
	}
}
