package connectors

import (
	"context"
	"sync"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // golang postgres driver
	"github.com/jmoiron/sqlx"
	"github.com/samber/lo"

	"dealradar/pkg/logx"
)

type Postgres struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration

	once sync.Once
	db   *sqlx.DB
}

// Client opens the pool on first call and returns the same instance afterwards.
func (p *Postgres) Client(ctx context.Context) *sqlx.DB {
	p.once.Do(func() {
		db := lo.Must(sqlx.ConnectContext(ctx, "pgx", p.DSN))

		db.SetMaxOpenConns(p.MaxOpenConns)
		db.SetMaxIdleConns(p.MaxIdleConns)
		db.SetConnMaxLifetime(p.ConnMaxLifetime)

		logger(ctx).Info("postgres connected")

		p.db = db
	})

	return p.db
}

func (p *Postgres) Close(ctx context.Context) {
	if p.db == nil {
		return
	}

	if err := p.db.Close(); err != nil {
		logger(ctx).Error("postgresClient.Close", logx.Error(err))
	}

	logger(ctx).Info("postgres disconnected")
}
