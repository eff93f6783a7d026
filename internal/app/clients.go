package app

import (
	"fmt"
	"log/slog"

	"github.com/heartmarshall/libra-works/internal/adapter/serviceclient"
	"github.com/heartmarshall/libra-works/internal/adapter/serviceclient/authtoken"
	"github.com/heartmarshall/libra-works/internal/adapter/serviceclient/depositauth"
	"github.com/heartmarshall/libra-works/internal/adapter/serviceclient/entityid"
	"github.com/heartmarshall/libra-works/internal/adapter/serviceclient/userinfo"
	"github.com/heartmarshall/libra-works/internal/config"
)

// Clients holds one handle per external collaborator. They are built once
// at startup and shared.
type Clients struct {
	AuthToken   *authtoken.Client
	EntityID    *entityid.Client
	UserInfo    *userinfo.Client
	DepositAuth *depositauth.Client
}

// NewClients reads the named service configs and builds the clients.
func NewClients(cfg config.ServicesConfig, logger *slog.Logger, obs serviceclient.Observer) (*Clients, error) {
	opts := []serviceclient.Option{serviceclient.WithObserver(obs)}

	base := func(name string) (*serviceclient.Client, error) {
		var sc serviceclient.Config
		if err := serviceclient.ReadConfig(cfg.Path(name), &sc); err != nil {
			return nil, fmt.Errorf("load %s config: %w", name, err)
		}
		return serviceclient.New(name, sc, logger, opts...), nil
	}

	authBase, err := base(authtoken.ServiceName)
	if err != nil {
		return nil, err
	}
	userBase, err := base(userinfo.ServiceName)
	if err != nil {
		return nil, err
	}
	depositBase, err := base(depositauth.ServiceName)
	if err != nil {
		return nil, err
	}

	var eid entityid.Config
	if err := serviceclient.ReadConfig(cfg.Path(entityid.ServiceName), &eid); err != nil {
		return nil, fmt.Errorf("load %s config: %w", entityid.ServiceName, err)
	}
	eidBase := serviceclient.New(entityid.ServiceName, eid.Config, logger, opts...)

	return &Clients{
		AuthToken:   authtoken.New(authBase),
		EntityID:    entityid.New(eidBase, eid.Shoulder, logger),
		UserInfo:    userinfo.New(userBase, logger),
		DepositAuth: depositauth.New(depositBase, logger),
	}, nil
}
