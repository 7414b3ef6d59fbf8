package connectors

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"sync"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // golang postgres driver
	"github.com/jmoiron/sqlx"
	"github.com/samber/lo"

	"boatmatch/pkg/logx"
)

// Postgres lazily opens a single pooled connection shared by the catalog
// repository.
type Postgres struct {
	value           *sqlx.DB
	err             error
	DSN             string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	ConnectTimeout  time.Duration
	init            sync.Once
}

func (p *Postgres) Client(ctx context.Context) (*sqlx.DB, error) {
	p.init.Do(func() {
		connectCtx := ctx

		if p.ConnectTimeout > 0 {
			var cancel context.CancelFunc

			connectCtx, cancel = context.WithTimeout(ctx, p.ConnectTimeout)
			defer cancel()
		}

		db, err := sqlx.ConnectContext(connectCtx, "pgx", p.DSN)
		if err != nil {
			p.err = fmt.Errorf("sqlx.ConnectContext: %w", err)

			return
		}

		db.SetMaxOpenConns(p.MaxOpenConns)
		db.SetMaxIdleConns(p.MaxIdleConns)
		db.SetConnMaxLifetime(p.ConnMaxLifetime)

		p.value = db

		logger(ctx).Info(
			"postgres connected",
			slog.String("database", p.database()),
		)
	})

	return p.value, p.err
}

func (p *Postgres) Close(ctx context.Context) {
	if p.value == nil {
		return
	}

	if err := p.value.Close(); err != nil {
		logger(ctx).Error("postgresClient.Close", logx.Error(err))
	}

	logger(ctx).Info(
		"postgres disconnected",
		slog.String("database", p.database()),
	)
}

func (p *Postgres) database() string {
	return lo.Must(url.Parse(p.DSN)).Path
}
