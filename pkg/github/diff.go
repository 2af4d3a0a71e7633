package github

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/sourcegraph/go-diff/diff"
)

const diffShape = "Diff"

type DiffFileType string

const (
	DiffFileTypeAdded   DiffFileType = "added"
	DiffFileTypeRemoved DiffFileType = "removed"
	DiffFileTypeRenamed DiffFileType = "renamed"
	DiffFileTypeUpdated DiffFileType = "updated"
)

// DiffFile is one file of a unified diff.
type DiffFile struct {
	Path     string       `json:"path"`
	OrigPath string       `json:"orig_path,omitempty"`
	Type     DiffFileType `json:"type"`
	Added    int          `json:"added"`
	Deleted  int          `json:"deleted"`
	Hunks    []*diff.Hunk `json:"-"`
}

// Diff is the body of a response requested with the diff media type.
type Diff struct {
	Files []*DiffFile `json:"files"`
	// Raw is the unparsed body.
	Raw []byte `json:"-"`
}

// Stat sums the line counts of every file.
func (d *Diff) Stat() (added, deleted int) {
	for _, f := range d.Files {
		added += f.Added
		deleted += f.Deleted
	}
	return added, deleted
}

// FromDiffResponse converts a response requested with the diff media type.
// Error statuses are classified exactly as FromRawResponse does.
func FromDiffResponse(raw *RawResponse) (Result, error) {
	return fromRawResponse(raw, diffShape, parseDiffBody)
}

func parseDiffBody(raw *RawResponse) (*Diff, error) {
	if ct := raw.Header(ContentTypeHeader); ct != "" && !isDiffMediaType(raw.mediaType()) {
		return nil, errors.Wrapf(ErrUnexpectedContentType, "%q", ct)
	}

	fds, err := diff.ParseMultiFileDiff(raw.Body)
	if err != nil {
		return nil, errors.Wrap(err, "parsing unified diff")
	}

	d := &Diff{Raw: raw.Body, Files: make([]*DiffFile, 0, len(fds))}
	for _, fd := range fds {
		d.Files = append(d.Files, newDiffFile(fd))
	}

	return d, nil
}

func newDiffFile(fd *diff.FileDiff) *DiffFile {
	orig := trimDiffPrefix(fd.OrigName, "a/")
	name := trimDiffPrefix(fd.NewName, "b/")

	stat := fd.Stat()
	f := &DiffFile{
		Path:    name,
		Type:    DiffFileTypeUpdated,
		Added:   int(stat.Added + stat.Changed),
		Deleted: int(stat.Deleted + stat.Changed),
		Hunks:   fd.Hunks,
	}

	switch {
	case fd.OrigName == "/dev/null":
		f.Type = DiffFileTypeAdded
	case fd.NewName == "/dev/null":
		f.Path = orig
		f.Type = DiffFileTypeRemoved
	case orig != name:
		f.OrigPath = orig
		f.Type = DiffFileTypeRenamed
	}

	return f
}

func trimDiffPrefix(name, prefix string) string {
	return strings.TrimPrefix(name, prefix)
}

func isDiffMediaType(mt string) bool {
	switch mt {
	case MediaTypeDiff, "text/x-diff", "text/x-patch", "text/plain":
		return true
	}
	return false
}
