package app

import (
	"github.com/rawafid/taqyim/internal/domain/catalog"
	"github.com/rawafid/taqyim/internal/i18n"
	"github.com/rawafid/taqyim/internal/notify"
	"github.com/rawafid/taqyim/pkg/logger"
)

// Option applies a configuration option to the Session.
type Option func(*Session)

// WithCatalog replaces the built-in rubric catalog.
func WithCatalog(cat *catalog.Catalog) Option {
	return func(s *Session) {
		if cat != nil {
			s.cat = cat
		}
	}
}

// WithSender sets the outbound notification transport.
func WithSender(sender notify.Sender) Option {
	return func(s *Session) {
		if sender != nil {
			s.sender = sender
		}
	}
}

// WithLogger sets a custom logger for the session.
func WithLogger(log logger.Logger) Option {
	return func(s *Session) {
		if log != nil {
			s.log = log
		}
	}
}

// WithLanguage sets the starting display language.
func WithLanguage(lang i18n.Lang) Option {
	return func(s *Session) {
		if lang != "" {
			s.lang = lang
		}
	}
}
