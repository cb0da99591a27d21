// Package sqlrepo reconciles generated catalog records against the restaurants and
// products tables through a database.Querier.
package sqlrepo

import (
	"log/slog"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/chrisdamba/foodcatalogsim/internal/database"
	"github.com/chrisdamba/foodcatalogsim/internal/models"
	"github.com/chrisdamba/foodcatalogsim/internal/repositories"
)

type Store struct {
	q      database.Querier
	sb     sq.StatementBuilderType
	now    func() time.Time
	logger *slog.Logger
}

var _ repositories.CatalogRepository = (*Store)(nil)

type Option func(*Store)

// WithClock overrides the time source used for created_at, updated_at and
// staleness cutoffs.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) { s.logger = logger }
}

func New(q database.Querier, dialect database.Dialect, opts ...Option) *Store {
	s := &Store{
		q:      q,
		sb:     dialect.StatementBuilder(),
		now:    time.Now,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewFromDB is New for an opened database.DB.
func NewFromDB(db *database.DB, opts ...Option) *Store {
	return New(db, db.Dialect, opts...)
}

func (s *Store) timestamp() time.Time {
	return s.now().UTC()
}

func joinTags(tags []string) string {
	cleaned := make([]string, 0, len(tags))
	for _, tag := range tags {
		if tag = strings.TrimSpace(tag); tag != "" {
			cleaned = append(cleaned, tag)
		}
	}
	return strings.Join(cleaned, models.TagSeparator)
}

func splitTags(joined string) []string {
	if joined == "" {
		return []string{}
	}
	parts := strings.Split(joined, models.TagSeparator)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
