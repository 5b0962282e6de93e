package engine

import (
	"sync/atomic"

	"github.com/thatcatcamp/scrolltheme/internal/themes"
)

// Sink receives every published palette. Publish is always handed a complete
// TokenSet that the engine will not touch again.
type Sink interface {
	Publish(tokens themes.TokenSet)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(tokens themes.TokenSet)

// Publish calls f.
func (f SinkFunc) Publish(tokens themes.TokenSet) {
	f(tokens)
}

// Store is a Sink that keeps the most recent palette for concurrent readers.
type Store struct {
	latest atomic.Pointer[themes.TokenSet]
	count  atomic.Uint64
}

// Publish replaces the stored palette.
func (s *Store) Publish(tokens themes.TokenSet) {
	s.latest.Store(&tokens)
	s.count.Add(1)
}

// Latest returns the last published palette, or nil before the first tick.
func (s *Store) Latest() themes.TokenSet {
	p := s.latest.Load()
	if p == nil {
		return nil
	}
	return *p
}

// Published returns how many palettes have been stored.
func (s *Store) Published() uint64 {
	return s.count.Load()
}
