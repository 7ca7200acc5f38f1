// Package mirror persists the roster as a whole-snapshot JSON blob under a
// single well-known slot. Backends differ only in where the slot lives; the
// payload format is identical everywhere, so snapshots move freely between
// backends.
package mirror

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/AlpianPPLG/workvibe/internal/models"
)

// SnapshotSlot is the well-known key the roster snapshot is stored under.
const SnapshotSlot = "team-members-data"

// Mirror is the durable copy of the roster. Load returns (nil, nil) when no
// prior snapshot exists; a non-nil error means the slot held something
// unreadable, which callers treat as "no prior state", not a failure.
type Mirror interface {
	Load(ctx context.Context) ([]models.Member, error)
	Save(ctx context.Context, members []models.Member) error
	Close()
}

// EncodeSnapshot serializes the roster, deduplicating by id with
// last-occurrence-wins semantics: the first occurrence keeps its position,
// the last occurrence supplies the record.
func EncodeSnapshot(members []models.Member) ([]byte, error) {
	deduped := dedupeByID(members)
	data, err := json.Marshal(deduped)
	if err != nil {
		return nil, fmt.Errorf("failed to encode roster snapshot: %w", err)
	}
	return data, nil
}

// DecodeSnapshot parses a snapshot payload, applying the same id
// deduplication as EncodeSnapshot.
func DecodeSnapshot(data []byte) ([]models.Member, error) {
	var members []models.Member
	if err := json.Unmarshal(data, &members); err != nil {
		return nil, fmt.Errorf("failed to decode roster snapshot: %w", err)
	}
	return dedupeByID(members), nil
}

func dedupeByID(members []models.Member) []models.Member {
	out := make([]models.Member, 0, len(members))
	index := make(map[string]int, len(members))
	for _, m := range members {
		if i, ok := index[m.ID]; ok {
			out[i] = m
			continue
		}
		index[m.ID] = len(out)
		out = append(out, m)
	}
	return out
}
