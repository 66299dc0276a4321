package auth

import (
	"fmt"

	"go.uber.org/fx"

	"github.com/polkiloo/coworking/internal/config"
)

// Module provides authentication primitives via fx.
var Module = fx.Options(
	fx.Provide(newPasswordHasher),
	fx.Provide(newTokenStrategy),
)

type hasherParams struct {
	fx.In

	Config *config.Config
}

func newPasswordHasher(p hasherParams) PasswordHasher {
	return NewBcryptHasher(p.Config.BcryptCost)
}

type strategyParams struct {
	fx.In

	Config *config.Config
}

func newTokenStrategy(p strategyParams) (Strategy, error) {
	opts := Options{TTL: p.Config.TokenTTL}
	switch p.Config.TokenStrategy {
	case "", "jwt":
		return NewJWTStrategy(p.Config.TokenSecret, opts), nil
	case "hmac":
		return NewHMACStrategy(p.Config.TokenSecret, opts), nil
	case "paseto":
		return NewPasetoStrategy(p.Config.TokenSecret, opts)
	default:
		return nil, fmt.Errorf("unknown token strategy %q", p.Config.TokenStrategy)
	}
}
