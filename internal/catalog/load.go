package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/gofrs/flock"
	"github.com/rs/zerolog"
)

const (
	lockRetryDelay     = 100 * time.Millisecond
	defaultLockTimeout = 5 * time.Second
)

// LockPath returns the advisory lock file guarding the catalog at path.
func LockPath(path string) string {
	return path + ".lock"
}

// Load reads the catalog at path under a shared lock.
func Load(ctx context.Context, path string) (*Catalog, error) {
	log := zerolog.Ctx(ctx)

	unlock, err := acquire(ctx, path, false)
	if err != nil {
		return nil, err
	}
	defer unlock()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read catalog %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog %s: %w", path, err)
	}
	log.Debug().Str("path", path).Int("tiers", len(c.Tiers)).
		Int("destinations", len(c.Destinations())).Msg("catalog loaded")
	return c, nil
}

// Parse decodes a catalog document, keeping tier keys in document order.
func Parse(data []byte) (*Catalog, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}

	c := &Catalog{}
	pos := make(map[string]int)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		name, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: unexpected token %v", ErrMalformed, tok)
		}

		var raw []map[string]any
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("%w: tier %q: %v", ErrMalformed, name, err)
		}
		dests := make([]Destination, 0, len(raw))
		for _, r := range raw {
			dests = append(dests, Destination{Tier: name, fields: stringFields(r)})
		}

		// A repeated key keeps its first position and its last value.
		if i, seen := pos[name]; seen {
			c.Tiers[i].Destinations = dests
			continue
		}
		pos[name] = len(c.Tiers)
		c.Tiers = append(c.Tiers, Tier{Name: name, Destinations: dests})
	}

	if err := expectDelim(dec, '}'); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data after catalog object", ErrMalformed)
	}
	return c, nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("%w: expected %q, got %v", ErrMalformed, want, tok)
	}
	return nil
}

// stringFields flattens decoded JSON values to text. Null is kept as an
// empty value, so a null cost parses as 0 rather than as a missing field.
func stringFields(raw map[string]any) map[string]string {
	out := make(map[string]string, len(raw))
	for k, v := range raw {
		switch x := v.(type) {
		case nil:
			out[k] = ""
		case string:
			out[k] = x
		case json.Number:
			out[k] = x.String()
		case bool:
			out[k] = strconv.FormatBool(x)
		default:
			b, err := json.Marshal(x)
			if err != nil {
				continue
			}
			out[k] = string(b)
		}
	}
	return out
}

// acquire takes the catalog lock, shared for reads and exclusive for writes.
// A lock file that cannot be created (read-only directory) is not fatal:
// the catalog is then read without coordination.
func acquire(ctx context.Context, path string, exclusive bool) (func(), error) {
	log := zerolog.Ctx(ctx)

	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, defaultLockTimeout)
		defer cancel()
	}

	lockPath := LockPath(path)
	l := flock.New(lockPath)
	var (
		locked bool
		err    error
	)
	if exclusive {
		locked, err = l.TryLockContext(ctx, lockRetryDelay)
	} else {
		locked, err = l.TryRLockContext(ctx, lockRetryDelay)
	}
	switch {
	case err != nil && (errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)):
		return nil, fmt.Errorf("catalog %s is locked by another process (lock: %s)", path, lockPath)
	case err != nil && !exclusive:
		log.Debug().Err(err).Str("lock", lockPath).Msg("catalog lock unavailable, reading unlocked")
		return func() {}, nil
	case err != nil:
		return nil, fmt.Errorf("cannot acquire catalog lock %s: %w", lockPath, err)
	case !locked:
		return nil, fmt.Errorf("catalog %s is locked by another process (lock: %s)", path, lockPath)
	}
	return func() { _ = l.Unlock() }, nil
}
