package repo

import (
	"context"
	"encoding/json"
	"fmt"

	perr "sentilex/internal/platform/errors"
	"sentilex/internal/services/api/history/domain"

	"github.com/valkey-io/valkey-go"
)

// DefaultKey is the list key used when none is configured
const DefaultKey = "sentilex:history"

// Valkey keeps the history in a capped list, newest at the head
type Valkey struct {
	client valkey.Client
	key    string
	cap    int
}

// NewValkey returns a list-backed repo on client
func NewValkey(client valkey.Client, key string, capacity int) *Valkey {
	if key == "" {
		key = DefaultKey
	}
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Valkey{client: client, key: key, cap: capacity}
}

// Push implements Repo. LPUSH and LTRIM go out in one round trip
func (v *Valkey) Push(ctx context.Context, rec domain.Record) error {
	b, err := json.Marshal(rec)
	if err != nil {
		return perr.Wrap(err, perr.ErrorCodeJSON, "history: encode record")
	}
	cmds := []valkey.Completed{
		v.client.B().Lpush().Key(v.key).Element(string(b)).Build(),
		v.client.B().Ltrim().Key(v.key).Start(0).Stop(int64(v.cap - 1)).Build(),
	}
	for _, res := range v.client.DoMulti(ctx, cmds...) {
		if err := res.Error(); err != nil {
			return perr.Wrap(err, perr.ErrorCodeUnavailable, "history: valkey push")
		}
	}
	return nil
}

// List implements Repo
func (v *Valkey) List(ctx context.Context) ([]domain.Record, error) {
	raw, err := v.client.Do(ctx, v.client.B().Lrange().Key(v.key).Start(0).Stop(int64(v.cap-1)).Build()).AsStrSlice()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return []domain.Record{}, nil
		}
		return nil, perr.Wrap(err, perr.ErrorCodeUnavailable, "history: valkey list")
	}
	out := make([]domain.Record, 0, len(raw))
	for i, s := range raw {
		var rec domain.Record
		if err := json.Unmarshal([]byte(s), &rec); err != nil {
			return nil, perr.Wrap(err, perr.ErrorCodeJSON, fmt.Sprintf("history: decode record %d", i))
		}
		out = append(out, rec)
	}
	return out, nil
}

// Cap implements Repo
func (v *Valkey) Cap() int { return v.cap }
