package app

import (
	"database/sql"

	"github.com/go-chi/oauth"
	"github.com/sarthakcode01/hacksetu-be/config"
)

type App struct {
	*sql.DB
	*oauth.BearerServer
	config.Config
}
