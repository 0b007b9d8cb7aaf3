// Package repomanager vends PostgreSQL-backed repositories bound to either
// the connection pool or a transaction, and applies the embedded schema
// migrations.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/rainyday/internal/dbx"
	"github.com/dmitrijs2005/rainyday/internal/server/repositories/rainchecks"
	"github.com/dmitrijs2005/rainyday/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/rainyday/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
	RainChecks(db dbx.DBTX) rainchecks.Repository
}
