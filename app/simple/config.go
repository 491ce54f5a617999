package simple

import (
	"github.com/dmitrymomot/dispatchkit/core/server"
)

type Config struct {
	Server server.Config

	AppName string `env:"APP_NAME" envDefault:"taskboard"`
	Env     string `env:"APP_ENV" envDefault:"development"`
}
