package github

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// RenameTable maps a wire key to the field key a shape reads it under. It is
// used for wire keys that are reserved words or not identifiers at all.
type RenameTable map[string]string

// Renamer is implemented by shapes whose wire keys must be renamed before
// their fields are read.
type Renamer interface {
	FieldRenames() RenameTable
}

// Rename tables of the shape catalog, one per shape that needs one.
var (
	reactionRollupRenames = RenameTable{
		"+1": "plusone",
		"-1": "minusone",
	}
	pullRequestLinksRenames = RenameTable{
		"self": "this",
	}
	issueEventRenameRenames = RenameTable{
		"from": "from_",
	}
	auditLogEventRenames = RenameTable{
		"@timestamp":   "timestamp",
		"_document_id": "document_id",
	}
	enterpriseSMTPSettingsRenames = RenameTable{
		"discard-to-noreply-address": "discard_to_noreply_address",
	}
)

// ApplyFieldRenames returns a copy of raw with keys renamed according to
// table. Keys absent from the table are copied unchanged. Two keys landing on
// the same name fail with ErrRenameCollision; raw is never modified.
func ApplyFieldRenames[V any](raw map[string]V, table RenameTable) (map[string]V, error) {
	out := make(map[string]V, len(raw))

	// Iterate in key order so the reported collision is deterministic.
	keys := maps.Keys(raw)
	slices.Sort(keys)
	for _, k := range keys {
		name := k
		if to, ok := table[k]; ok {
			name = to
		}

		if _, dup := out[name]; dup {
			return nil, errors.Wrapf(ErrRenameCollision, "%q", name)
		}
		out[name] = raw[k]
	}

	return out, nil
}
