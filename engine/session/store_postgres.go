package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	slotsx "github.com/staywise/hotel-dialogue/engine/slots"
)

type PostgresConfig struct {
	DSN string `envconfig:"DSN" split_words:"true" required:"true"`
}

type conversationRow struct {
	bun.BaseModel `bun:"table:conversation_slots,alias:cs"`

	ConversationID string          `bun:"conversation_id,pk"`
	Snapshot       json.RawMessage `bun:"snapshot,type:jsonb,notnull"`
	UpdatedAt      time.Time       `bun:"updated_at,notnull"`
}

// PostgresStore persists slot snapshots in a single JSONB-backed table,
// for hosts that keep conversations in their main database.
type PostgresStore struct {
	db *bun.DB
}

func NewPostgresStore(cfg PostgresConfig) (*PostgresStore, error) {
	dsn := strings.TrimSpace(cfg.DSN)
	if dsn == "" {
		return nil, errors.New("postgres dsn is required")
	}

	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	db := bun.NewDB(sqldb, pgdialect.New())

	return &PostgresStore{db: db}, nil
}

// Init creates the backing table if it does not exist.
func (s *PostgresStore) Init(ctx context.Context) error {
	_, err := s.db.NewCreateTable().
		Model((*conversationRow)(nil)).
		IfNotExists().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("create conversation_slots table: %w", err)
	}
	return nil
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}

func (s *PostgresStore) Load(ctx context.Context, conversationID string) (*slotsx.Record, error) {
	if strings.TrimSpace(conversationID) == "" {
		return nil, ErrInvalidConversation
	}

	row := new(conversationRow)
	err := s.db.NewSelect().
		Model(row).
		Where("conversation_id = ?", conversationID).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrStateNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select conversation slots: %w", err)
	}

	var snap slotsx.Snapshot
	if err := json.Unmarshal(row.Snapshot, &snap); err != nil {
		return nil, fmt.Errorf("unmarshal slot snapshot: %w", err)
	}
	return slotsx.FromSnapshot(snap), nil
}

func (s *PostgresStore) Save(ctx context.Context, conversationID string, rec *slotsx.Record) error {
	if strings.TrimSpace(conversationID) == "" {
		return ErrInvalidConversation
	}
	if rec == nil {
		return ErrNilRecord
	}

	payload, err := json.Marshal(rec.Snapshot())
	if err != nil {
		return fmt.Errorf("marshal slot snapshot: %w", err)
	}

	row := &conversationRow{
		ConversationID: conversationID,
		Snapshot:       payload,
		UpdatedAt:      time.Now().UTC(),
	}

	_, err = s.db.NewInsert().
		Model(row).
		On("CONFLICT (conversation_id) DO UPDATE").
		Set("snapshot = EXCLUDED.snapshot").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("upsert conversation slots: %w", err)
	}
	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, conversationID string) error {
	if strings.TrimSpace(conversationID) == "" {
		return ErrInvalidConversation
	}

	_, err := s.db.NewDelete().
		Model((*conversationRow)(nil)).
		Where("conversation_id = ?", conversationID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete conversation slots: %w", err)
	}
	return nil
}
