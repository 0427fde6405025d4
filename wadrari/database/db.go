package database

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"os"
	"time"

	"log/slog"

	"github.com/SimaxBen/wadrari/wadrari/database/models"
	"github.com/uptrace/bun"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
)

const (
	defaultConnTimeout   = 5 * time.Second
	defaultMaxRetries    = 3
	defaultRetryInterval = time.Second
	schemaVersion        = 1 // bump when schema/migrations change
)

type DBConfig struct {
	Host         string `toml:"host"`
	Port         int    `toml:"port"`
	User         string `toml:"user"`
	Password     string `toml:"password"`
	Database     string `toml:"database"`
	PoolSize     int    `toml:"pool_size"`
	MaxIdleConns int    `toml:"max_idle_conns"`
	MaxLifetime  int    `toml:"max_lifetime"`
}

type DB struct {
	pool  *pgxpool.Pool
	bunDB *bun.DB
}

func New(ctx context.Context, cfg DBConfig) (*DB, error) {
	// Retry the initial reachability probe before building the pool
	var conn net.Conn
	var err error

	addr := net.JoinHostPort(cfg.Host, fmt.Sprintf("%d", cfg.Port))
	for i := 0; i < defaultMaxRetries; i++ {
		conn, err = net.DialTimeout("tcp", addr, defaultConnTimeout)
		if err == nil {
			break
		}
		time.Sleep(defaultRetryInterval)
	}
	if err != nil {
		return nil, fmt.Errorf("database server unreachable after %d attempts: %w", defaultMaxRetries, err)
	}
	defer conn.Close()

	poolConfig, err := pgxpool.ParseConfig(buildConnString(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection string: %w", err)
	}

	if cfg.PoolSize > 0 {
		poolConfig.MaxConns = int32(cfg.PoolSize)
	}
	if cfg.MaxIdleConns > 0 {
		poolConfig.MinConns = int32(cfg.MaxIdleConns)
	}
	if cfg.MaxLifetime > 0 {
		poolConfig.MaxConnLifetime = time.Duration(cfg.MaxLifetime) * time.Second
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	return &DB{pool: pool, bunDB: newBunDB(pool)}, nil
}

func buildConnString(cfg DBConfig) string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?connect_timeout=5",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Database,
	)
}

func (db *DB) GetPool() *pgxpool.Pool {
	return db.pool
}

func (db *DB) BunDB() *bun.DB {
	return db.bunDB
}

func newBunDB(pool *pgxpool.Pool) *bun.DB {
	sslMode := os.Getenv("PG_SSLMODE")
	if sslMode == "" {
		sslMode = "disable"
	}

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		pool.Config().ConnConfig.User,
		pool.Config().ConnConfig.Password,
		pool.Config().ConnConfig.Host,
		pool.Config().ConnConfig.Port,
		pool.Config().ConnConfig.Database,
		sslMode,
	)

	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	return bun.NewDB(sqldb, pgdialect.New())
}

func (db *DB) ExecWithLog(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error) {
	start := time.Now()
	result, err := db.pool.Exec(ctx, sql, args...)
	duration := time.Since(start)

	if err != nil {
		slog.Error("Query failed",
			slog.String("type", "db"),
			slog.String("operation", "exec"),
			slog.String("query", sql),
			slog.Any("args", args),
			slog.Duration("took", duration),
			slog.Any("error", err),
		)
		return result, err
	}

	slog.Debug("Query executed",
		slog.String("type", "db"),
		slog.String("operation", "exec"),
		slog.String("query", sql),
		slog.Duration("took", duration),
		slog.Int64("affected_rows", result.RowsAffected()),
	)
	return result, nil
}

func (db *DB) QueryWithLog(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error) {
	start := time.Now()
	rows, err := db.pool.Query(ctx, sql, args...)
	duration := time.Since(start)

	if err != nil {
		slog.Error("Query failed",
			slog.String("type", "db"),
			slog.String("operation", "query"),
			slog.String("query", sql),
			slog.Duration("took", duration),
			slog.Any("error", err),
		)
		return rows, err
	}

	slog.Debug("Query executed",
		slog.String("type", "db"),
		slog.String("operation", "query"),
		slog.String("query", sql),
		slog.Duration("took", duration),
	)
	return rows, nil
}

func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
	if db.bunDB != nil {
		db.bunDB.Close()
	}
}

// Ping verifies both database connections are working
func (db *DB) Ping(ctx context.Context) error {
	if err := db.pool.Ping(ctx); err != nil {
		return fmt.Errorf("pgxpool ping failed: %w", err)
	}
	if err := db.bunDB.PingContext(ctx); err != nil {
		return fmt.Errorf("bun ping failed: %w", err)
	}
	return nil
}

// InitializeSchema creates all required database tables, indexes, and the
// insert-notification triggers the realtime feed listens on.
func (db *DB) InitializeSchema(ctx context.Context) error {
	fastInit := os.Getenv("DB_FAST_INIT") == "1"
	if fastInit {
		if err := db.ensureAppMeta(ctx); err == nil {
			if v, _ := db.getAppMeta(ctx, "schema_version"); v == fmt.Sprintf("%d", schemaVersion) {
				slog.Info("Fast DB init: schema up-to-date, skipping initialization",
					slog.String("mode", "DB_FAST_INIT"),
					slog.Int("schema_version", schemaVersion))
				return nil
			}
		}
	}

	// Create tables in the correct order to handle foreign key constraints
	tables := []interface{}{
		(*models.User)(nil),
		(*models.Chat)(nil),
		(*models.Message)(nil),
		(*models.Story)(nil),
		(*models.StoryComment)(nil),
		(*models.StoryReaction)(nil),
		(*models.Quest)(nil),
		(*models.QuestCompletion)(nil),
		(*models.Badge)(nil),
		(*models.DailyActivity)(nil),
	}

	for _, model := range tables {
		query := db.bunDB.NewCreateTable().
			Model(model).
			IfNotExists()

		_, err := query.Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}

	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_users_username ON users(username);",
		"CREATE INDEX IF NOT EXISTS idx_users_trophies ON users(trophies DESC);",
		"CREATE INDEX IF NOT EXISTS idx_messages_chat_id ON messages(chat_id, created_at);",
		"CREATE INDEX IF NOT EXISTS idx_messages_sender ON messages(sender_id, created_at);",
		"CREATE INDEX IF NOT EXISTS idx_messages_client_token ON messages(client_token) WHERE client_token IS NOT NULL;",
		"CREATE INDEX IF NOT EXISTS idx_stories_created ON stories(created_at DESC);",
		"CREATE INDEX IF NOT EXISTS idx_stories_expires ON stories(expires_at);",
		"CREATE INDEX IF NOT EXISTS idx_story_comments_story ON story_comments(story_id, created_at);",
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_story_reactions_unique ON story_reactions(story_id, user_id, kind);",
		"CREATE INDEX IF NOT EXISTS idx_quests_active ON quests(is_active) WHERE is_active = true;",
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_quests_name ON quests(name);",
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_quest_completions_window ON quest_completions(user_id, quest_id, day);",
		"CREATE INDEX IF NOT EXISTS idx_badges_user ON badges(user_id);",
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_daily_activities_window ON daily_activities(user_id, day);",
	}

	for _, idx := range indexes {
		if _, err := db.ExecWithLog(ctx, idx); err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	if err := db.installNotifyTriggers(ctx); err != nil {
		return fmt.Errorf("failed to install notify triggers: %w", err)
	}

	if err := db.InitializeQuestData(ctx); err != nil {
		return fmt.Errorf("failed to initialize quest data: %w", err)
	}

	// Update schema version marker (safe upsert)
	if err := db.ensureAppMeta(ctx); err == nil {
		_ = db.setAppMeta(ctx, "schema_version", fmt.Sprintf("%d", schemaVersion))
	}

	return nil
}

// installNotifyTriggers wires pg_notify on row inserts so the realtime
// listener receives the full new row as JSON on the table's channel.
func (db *DB) installNotifyTriggers(ctx context.Context) error {
	notifyFn := `
		CREATE OR REPLACE FUNCTION notify_row_insert() RETURNS trigger AS $$
		BEGIN
			PERFORM pg_notify(TG_TABLE_NAME || '_inserts', row_to_json(NEW)::text);
			RETURN NEW;
		END;
		$$ LANGUAGE plpgsql;
	`
	if _, err := db.ExecWithLog(ctx, notifyFn); err != nil {
		return err
	}

	for _, table := range []string{"messages", "stories", "story_reactions"} {
		trigger := fmt.Sprintf(`
			DO $$
			BEGIN
				IF NOT EXISTS (
					SELECT 1 FROM pg_trigger WHERE tgname = 'notify_%s_insert'
				) THEN
					CREATE TRIGGER notify_%s_insert
					AFTER INSERT ON %s
					FOR EACH ROW EXECUTE FUNCTION notify_row_insert();
				END IF;
			END $$;
		`, table, table, table)
		if _, err := db.ExecWithLog(ctx, trigger); err != nil {
			return err
		}
	}
	return nil
}

// ensureAppMeta creates the app_meta table if not exists
func (db *DB) ensureAppMeta(ctx context.Context) error {
	_, err := db.ExecWithLog(ctx, `CREATE TABLE IF NOT EXISTS app_meta (key TEXT PRIMARY KEY, value TEXT)`)
	return err
}

func (db *DB) getAppMeta(ctx context.Context, key string) (string, error) {
	row := db.pool.QueryRow(ctx, `SELECT value FROM app_meta WHERE key = $1`, key)
	var v string
	if err := row.Scan(&v); err != nil {
		return "", err
	}
	return v, nil
}

func (db *DB) setAppMeta(ctx context.Context, key, value string) error {
	sql := `INSERT INTO app_meta(key, value) VALUES($1, $2)
            ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`
	_, err := db.pool.Exec(ctx, sql, key, value)
	return err
}

// InitializeQuestData inserts or updates the default quest definitions
func (db *DB) InitializeQuestData(ctx context.Context) error {
	type questDef struct {
		Name        string
		Description string
		Type        string
		MaxPerDay   int
		Reward      int64
	}

	quests := []questDef{
		{"Say Hello", "Send 1 message today", models.QuestTypeDaily, 1, 10},
		{"Keep Talking", "Send 5 messages today", models.QuestTypeDaily, 1, 25},
		{"Storyteller", "Post a story today", models.QuestTypeDaily, 1, 15},
		{"Social Butterfly", "React to a story", models.QuestTypeRepeatable, 3, 5},
		{"First Steps", "Complete your first quest", models.QuestTypeOneTime, 1, 50},
	}

	insertSQL := `
		INSERT INTO quests (
			name, description, type, max_completions_per_day, trophy_reward,
			is_active, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5,
			true, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP
		) ON CONFLICT (name) DO UPDATE SET
			description = EXCLUDED.description,
			type = EXCLUDED.type,
			max_completions_per_day = EXCLUDED.max_completions_per_day,
			trophy_reward = EXCLUDED.trophy_reward,
			updated_at = CURRENT_TIMESTAMP;
	`

	for _, q := range quests {
		if _, err := db.ExecWithLog(ctx, insertSQL,
			q.Name, q.Description, q.Type, q.MaxPerDay, q.Reward,
		); err != nil {
			return fmt.Errorf("failed to upsert quest %s: %w", q.Name, err)
		}
	}

	slog.Info("Quest definitions initialized", slog.Int("count", len(quests)))
	return nil
}
