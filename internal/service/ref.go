package service

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrAmbiguousRef    = errors.New("session reference is ambiguous")
)

// SessionRef names a catalog session as "Feature/Title". The feature may be
// omitted when the title is unique across tracks.
type SessionRef struct {
	Feature string
	Title   string
}

// ParseSessionRef splits s at the first "/". Titles may contain further
// slashes; feature names may not.
func ParseSessionRef(s string) (SessionRef, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return SessionRef{}, fmt.Errorf("empty session reference")
	}
	feature, title, found := strings.Cut(s, "/")
	if !found {
		return SessionRef{Title: s}, nil
	}
	feature, title = strings.TrimSpace(feature), strings.TrimSpace(title)
	if title == "" {
		return SessionRef{}, fmt.Errorf("session reference %q has no title", s)
	}
	return SessionRef{Feature: feature, Title: title}, nil
}

func (r SessionRef) String() string {
	if r.Feature == "" {
		return r.Title
	}
	return r.Feature + "/" + r.Title
}
