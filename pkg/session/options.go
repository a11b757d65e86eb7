package session

import "log/slog"

// Option configures a Session.
type Option func(*Session)

// WithIDGenerator overrides the id source for new components.
func WithIDGenerator(gen IDGenerator) Option {
	return func(s *Session) {
		if gen != nil {
			s.ids = gen
		}
	}
}

// WithTitleSanitizer replaces the markup stripper applied to renamed titles.
// Passing nil stores titles verbatim.
func WithTitleSanitizer(fn TitleSanitizer) Option {
	return func(s *Session) {
		s.sanitize = fn
	}
}

// WithLogger receives a Debug record for every committed transition.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithIndexCacheSize sets how many tree snapshots keep an id index.
func WithIndexCacheSize(size int) Option {
	return func(s *Session) {
		s.indexSize = size
	}
}
