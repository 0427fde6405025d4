package gateway

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SimaxBen/wadrari/wadrari/logger"
)

// Tables with insert triggers installed by the schema. Each notifies on
// the "<table>_inserts" channel with the full row as JSON.
var notifyTables = []string{"messages", "stories", "story_reactions"}

// Unsubscribe releases a realtime subscription. Safe to call more than
// once.
type Unsubscribe func()

type subscriber struct {
	id int64
	fn func(payload []byte)
}

// notifyConn is one live connection in LISTEN mode.
type notifyConn interface {
	WaitForNotification(ctx context.Context) (*pgconn.Notification, error)
	Release()
}

// Listener holds one dedicated connection in LISTEN mode and fans
// notifications out to registered subscribers. Callbacks run on the
// listener goroutine so they must not block.
type Listener struct {
	pool    *pgxpool.Pool
	connect func(ctx context.Context) (notifyConn, error)

	mu     sync.Mutex
	nextID int64
	subs   map[string][]subscriber

	cancel  context.CancelFunc
	done    chan struct{}
	started bool
}

func NewListener(pool *pgxpool.Pool) *Listener {
	l := &Listener{
		pool: pool,
		subs: make(map[string][]subscriber),
	}
	l.connect = l.poolConnect
	return l
}

// Start opens the notification connection and begins dispatching. It
// returns as soon as every LISTEN is registered; the receive loop runs in
// the background until Close or ctx cancellation, reconnecting on failure.
func (l *Listener) Start(ctx context.Context) error {
	l.mu.Lock()
	if l.started {
		l.mu.Unlock()
		return nil
	}
	l.started = true
	runCtx, cancel := context.WithCancel(ctx)
	l.cancel = cancel
	l.done = make(chan struct{})
	l.mu.Unlock()

	conn, err := l.connect(runCtx)
	if err != nil {
		cancel()
		close(l.done)
		l.mu.Lock()
		l.started = false
		l.mu.Unlock()
		return fmt.Errorf("starting realtime listener: %w", err)
	}

	go l.run(runCtx, conn)
	return nil
}

func (l *Listener) Close() {
	l.mu.Lock()
	cancel, done := l.cancel, l.done
	l.mu.Unlock()
	if cancel != nil {
		cancel()
	}
	if done != nil {
		<-done
	}
}

// Subscribe registers fn for insert notifications on table. It may be
// called before Start; delivery begins once the listener is running.
func (l *Listener) Subscribe(table string, fn func(payload []byte)) Unsubscribe {
	l.mu.Lock()
	l.nextID++
	id := l.nextID
	l.subs[table] = append(l.subs[table], subscriber{id: id, fn: fn})
	l.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Lock()
			defer l.mu.Unlock()
			subs := l.subs[table]
			for i, s := range subs {
				if s.id == id {
					l.subs[table] = append(subs[:i:i], subs[i+1:]...)
					break
				}
			}
		})
	}
}

// run pumps the current connection and reconnects whenever it breaks.
func (l *Listener) run(ctx context.Context, conn notifyConn) {
	defer close(l.done)
	for {
		err := l.pump(ctx, conn)
		conn.Release()
		if ctx.Err() != nil {
			return
		}
		logger.LogError("realtime connection lost", "error", err)

		for {
			select {
			case <-ctx.Done():
				return
			case <-time.After(subscribeWait):
			}
			var cerr error
			conn, cerr = l.connect(ctx)
			if cerr == nil {
				break
			}
			if ctx.Err() != nil {
				return
			}
			logger.LogError("realtime listener reconnect failed", "error", cerr)
		}
	}
}

// poolConnect acquires a dedicated connection and issues LISTEN for every
// channel.
func (l *Listener) poolConnect(ctx context.Context) (notifyConn, error) {
	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquiring listen connection: %w", err)
	}
	for _, table := range notifyTables {
		if _, err := conn.Exec(ctx, "LISTEN "+table+"_inserts"); err != nil {
			conn.Release()
			return nil, fmt.Errorf("listening on %s_inserts: %w", table, err)
		}
	}
	logger.LogSystem("realtime listener connected", "channels", len(notifyTables))
	return poolNotifyConn{conn: conn}, nil
}

type poolNotifyConn struct {
	conn *pgxpool.Conn
}

func (c poolNotifyConn) WaitForNotification(ctx context.Context) (*pgconn.Notification, error) {
	return c.conn.Conn().WaitForNotification(ctx)
}

func (c poolNotifyConn) Release() {
	c.conn.Release()
}

func (l *Listener) pump(ctx context.Context, conn notifyConn) error {
	for {
		notification, err := conn.WaitForNotification(ctx)
		if err != nil {
			return err
		}
		l.dispatch(notification.Channel, []byte(notification.Payload))
	}
}

func (l *Listener) dispatch(channel string, payload []byte) {
	table := channel
	if n := len(channel) - len("_inserts"); n > 0 && channel[n:] == "_inserts" {
		table = channel[:n]
	}

	l.mu.Lock()
	subs := make([]subscriber, len(l.subs[table]))
	copy(subs, l.subs[table])
	l.mu.Unlock()

	for _, s := range subs {
		s.fn(payload)
	}
}
