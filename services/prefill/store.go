// Package prefill keeps short-lived contact drafts used to pre-populate reservation forms.
package prefill

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"khadamat/models"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const keyPrefix = "prefill:"

// DefaultTTL is how long a draft survives without being consumed.
const DefaultTTL = 30 * time.Minute

// ErrDraftNotFound is returned for unknown or expired tokens.
var ErrDraftNotFound = errors.New("prefill draft not found")

// Store persists drafts in Redis under a random token.
type Store struct {
	client *redis.Client
	ttl    time.Duration
	now    func() time.Time
}

func NewStore(client *redis.Client, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{client: client, ttl: ttl, now: time.Now}
}

// Create saves draft and returns its token.
func (s *Store) Create(ctx context.Context, draft models.PrefillDraft) (string, error) {
	draft.Firstname = strings.TrimSpace(draft.Firstname)
	draft.Phone = strings.TrimSpace(draft.Phone)
	draft.Email = strings.TrimSpace(draft.Email)
	draft.Location = strings.TrimSpace(draft.Location)
	draft.CreatedAt = s.now().UTC()

	data, err := json.Marshal(draft)
	if err != nil {
		return "", fmt.Errorf("failed to marshal prefill draft: %w", err)
	}
	token := uuid.NewString()
	if err := s.client.Set(ctx, keyPrefix+token, data, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("failed to save prefill draft: %w", err)
	}
	return token, nil
}

// Get returns the draft without consuming it.
func (s *Store) Get(ctx context.Context, token string) (*models.PrefillDraft, error) {
	data, err := s.client.Get(ctx, keyPrefix+token).Bytes()
	return decode(data, err)
}

// Consume returns the draft and deletes it.
func (s *Store) Consume(ctx context.Context, token string) (*models.PrefillDraft, error) {
	data, err := s.client.GetDel(ctx, keyPrefix+token).Bytes()
	return decode(data, err)
}

func decode(data []byte, err error) (*models.PrefillDraft, error) {
	if errors.Is(err, redis.Nil) {
		return nil, ErrDraftNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read prefill draft: %w", err)
	}
	var draft models.PrefillDraft
	if err := json.Unmarshal(data, &draft); err != nil {
		return nil, fmt.Errorf("failed to unmarshal prefill draft: %w", err)
	}
	return &draft, nil
}
