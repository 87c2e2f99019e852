package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/glotchimo/nickbot/internal/models"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/graxinc/errutil"
)

const migrationsURL = "file://migrations"

// Database is the optional audit store. Nothing read from it changes how a
// command behaves.
type Database struct {
	l       *slog.Logger
	db      *sql.DB
	builder sq.StatementBuilderType
}

func NewDatabase(l *slog.Logger, databaseURL string) (*Database, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, errutil.With(err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(5 * time.Minute)

	cache := sq.NewStmtCache(db)
	database := Database{l: l, db: db, builder: newBuilder().RunWith(cache)}

	if err := database.Migrate(databaseURL); err != nil {
		db.Close()
		return nil, errutil.With(err)
	}

	return &database, nil
}

func newBuilder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

func (db *Database) Close() error {
	return db.db.Close()
}

func (db *Database) Migrate(databaseURL string) error {
	m, err := migrate.New(migrationsURL, databaseURL)
	if err != nil {
		return errutil.With(err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return errutil.With(err)
	}

	version, dirty, err := m.Version()
	if err != nil {
		return errutil.With(err)
	}

	db.l.Info("migrations applied", "version", version, "dirty", dirty)

	return nil
}

func (db *Database) Create(ctx context.Context, m models.Mappable) error {
	if _, err := insertQuery(db.builder, m, time.Now().UTC()).ExecContext(ctx); err != nil {
		return errutil.With(err)
	}

	return nil
}

func (db *Database) Update(ctx context.Context, table models.Table, where sq.Eq, updates map[string]any) error {
	if _, err := updateQuery(db.builder, table, where, updates, time.Now().UTC()).ExecContext(ctx); err != nil {
		return errutil.With(err)
	}

	return nil
}

func (db *Database) Count(ctx context.Context, table models.Table, where sq.Eq) (int, error) {
	var count int

	q := db.builder.
		Select("COUNT(*)").
		From(string(table))
	if len(where) > 0 {
		q = q.Where(where)
	}

	if err := q.QueryRowContext(ctx).Scan(&count); err != nil {
		return count, errutil.With(err)
	}

	return count, nil
}

func (db *Database) RecordInvocation(ctx context.Context, inv models.Invocation) error {
	return db.Create(ctx, inv)
}

func (db *Database) PutGuild(ctx context.Context, guild models.Guild) error {
	if _, err := putGuildQuery(db.builder, guild, time.Now().UTC()).ExecContext(ctx); err != nil {
		return errutil.With(err)
	}

	return nil
}

func (db *Database) GetGuild(ctx context.Context, id string) (*models.Guild, error) {
	var g models.Guild
	var settingsRaw []byte

	q := db.builder.
		Select(
			"id",
			"name",
			"settings",
			"created",
			"updated",
			"deleted").
		From(string(models.TableGuilds)).
		Where(sq.Eq{"id": id})

	if err := q.QueryRowContext(ctx).Scan(
		&g.ID,
		&g.Name,
		&settingsRaw,
		&g.Created,
		&g.Updated,
		&g.Deleted,
	); err != nil {
		return nil, errutil.Wrap(err)
	}

	if len(settingsRaw) > 0 {
		if err := json.Unmarshal(settingsRaw, &g.Settings); err != nil {
			return nil, errutil.With(err)
		}
	}

	return &g, nil
}

func (db *Database) SetCommandSetHash(ctx context.Context, guildID, hash string) error {
	return db.Update(ctx, models.TableGuilds, sq.Eq{"id": guildID}, commandSetHashUpdate(hash))
}

func commandSetHashUpdate(hash string) map[string]any {
	return map[string]any{
		"settings": sq.Expr("jsonb_set(COALESCE(settings, '{}'::jsonb), '{command_set_hash}', to_jsonb(?::text))", hash),
	}
}

func putGuildQuery(b sq.StatementBuilderType, guild models.Guild, now time.Time) sq.InsertBuilder {
	return insertQuery(b, guild, now).
		Suffix("ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, updated = EXCLUDED.created, deleted = NULL")
}

func insertQuery(b sq.StatementBuilderType, m models.Mappable, now time.Time) sq.InsertBuilder {
	data := m.Map()
	data["created"] = now

	return b.
		Insert(string(m.Table())).
		SetMap(data)
}

func updateQuery(b sq.StatementBuilderType, table models.Table, where sq.Eq, updates map[string]any, now time.Time) sq.UpdateBuilder {
	set := make(map[string]any, len(updates)+1)
	for k, v := range updates {
		set[k] = v
	}
	set["updated"] = now

	return b.
		Update(string(table)).
		SetMap(set).
		Where(where)
}
