// Package citynames extracts area names from an Overpass document.
package citynames

import (
	"errors"
	"fmt"
	"iter"

	"github.com/osmcities/osmcities/internal/model"
)

// ScanMode controls which elements ExtractNames examines.
type ScanMode int

const (
	// ScanPrefix examines elements in order and stops at the first
	// element without tags. With `out body; >; out skel qt;` the tagged
	// relations come first and the untagged member skeletons follow.
	ScanPrefix ScanMode = iota

	// ScanAll examines every element and skips those without tags.
	ScanAll
)

// String implements fmt.Stringer.
func (m ScanMode) String() string {
	switch m {
	case ScanPrefix:
		return "prefix"
	case ScanAll:
		return "all"
	default:
		return fmt.Sprintf("ScanMode(%d)", int(m))
	}
}

// ErrUnknownScanMode indicates that ParseScanMode does not know the mode.
var ErrUnknownScanMode = errors.New("citynames: unknown scan mode")

// ParseScanMode is the inverse of [ScanMode.String].
func ParseScanMode(value string) (ScanMode, error) {
	switch value {
	case "prefix":
		return ScanPrefix, nil
	case "all":
		return ScanAll, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownScanMode, value)
	}
}

var (
	// ErrNoElements indicates that the document has no elements at all.
	ErrNoElements = errors.New("citynames: response contains no elements")

	// ErrMissingName indicates that a tagged element lacks the "name" tag.
	ErrMissingName = errors.New("citynames: tagged element has no name")
)

// ExtractNames returns a lazy, single-pass sequence of the names in doc.
//
// An empty or missing elements list yields [ErrNoElements] and nothing
// else. In [ScanPrefix] mode a tagged element without a name yields an
// error wrapping [ErrMissingName] and ends the sequence; in [ScanAll]
// mode such elements are skipped.
func ExtractNames(doc *model.OverpassDocument, mode ScanMode) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		if doc == nil || len(doc.Elements) <= 0 {
			yield("", ErrNoElements)
			return
		}
		for idx := range doc.Elements {
			elem := &doc.Elements[idx]
			if !elem.HasTags() {
				if mode == ScanPrefix {
					return
				}
				continue
			}
			name, found := elem.Name()
			if !found {
				if mode == ScanPrefix {
					yield("", fmt.Errorf("%w: element #%d (%s %d)", ErrMissingName, idx, elem.Type, elem.ID))
					return
				}
				continue
			}
			if !yield(name, nil) {
				return
			}
		}
	}
}
