package imageref

import (
	"fmt"

	"github.com/distribution/reference"
)

// A parsed container image reference.
type Ref struct {
	named reference.Named
}

// Parses an image reference, normalizing Docker Hub shorthand (e.g.
// "centos:7.6.1810" or "pingcap/alpine-glibc").
func Parse(s string) (Ref, error) {
	named, err := reference.ParseNormalizedNamed(s)
	if err != nil {
		return Ref{}, fmt.Errorf("parse image reference %q: %w", s, err)
	}
	return Ref{named: named}, nil
}

// Returns the reference in familiar form, as a user would write it.
func (r Ref) String() string {
	return reference.FamiliarString(r.named)
}

// Returns the repository name without tag or digest, in familiar form.
func (r Ref) Name() string {
	return reference.FamiliarName(r.named)
}

// Returns the explicit tag, or false when the reference carries none.
//
// No default tag is assumed: an untagged reference floats to whatever the
// registry serves at pull time.
func (r Ref) Tag() (string, bool) {
	if tagged, ok := r.named.(reference.Tagged); ok {
		return tagged.Tag(), true
	}
	return "", false
}

// Returns true if the reference carries a content digest.
func (r Ref) Digested() bool {
	_, ok := r.named.(reference.Digested)
	return ok
}

// Returns true if the reference is pinned to an exact tag or digest
// rather than floating.
func (r Ref) Pinned() bool {
	if _, ok := r.Tag(); ok {
		return true
	}
	return r.Digested()
}
