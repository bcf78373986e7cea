package db_fx

import (
	"go.uber.org/fx"
	"inkwell/internal/infra"
)

var Module = fx.Provide(
	infra.InitPostgresql,
)
