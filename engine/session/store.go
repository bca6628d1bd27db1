package session

import (
	"context"
	"errors"

	slotsx "github.com/staywise/hotel-dialogue/engine/slots"
)

var (
	ErrStateNotFound       = errors.New("conversation state not found")
	ErrNilRecord           = errors.New("slot record is nil")
	ErrInvalidConversation = errors.New("conversation id is empty")
)

// Store persists the flat slot snapshot between turns. The engine itself
// never calls a Store; the host loads before a turn and saves after.
type Store interface {
	Load(ctx context.Context, conversationID string) (*slotsx.Record, error)
	Save(ctx context.Context, conversationID string, rec *slotsx.Record) error
	Delete(ctx context.Context, conversationID string) error
}
