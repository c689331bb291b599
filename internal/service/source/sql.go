package source

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/kapu/mediatrends-publishers-go/internal/config"
	"github.com/kapu/mediatrends-publishers-go/internal/domain"
	"github.com/kapu/mediatrends-publishers-go/internal/service/database"
	"github.com/kapu/mediatrends-publishers-go/internal/trends"
	"github.com/kapu/mediatrends-publishers-go/internal/util"
	"github.com/kapu/mediatrends-publishers-go/pkg/errors"
)

// mediaRow is the scan target for trending queries. Unknown columns are
// ignored and missing ones stay null.
type mediaRow struct {
	Title         sql.NullString  `db:"title"`
	ImdbID        sql.NullString  `db:"imdb_id"`
	Rating        sql.NullFloat64 `db:"rating"`
	Year          sql.NullInt64   `db:"year"`
	CoverURL      sql.NullString  `db:"cover_url"`
	Score         sql.NullFloat64 `db:"score"`
	ValidDate     sql.NullTime    `db:"valid_date"`
	Genres        sql.NullString  `db:"genres"`
	LanguageCodes sql.NullString  `db:"language_codes"`
}

func (r mediaRow) ToDomain() domain.MediaRecord {
	m := domain.MediaRecord{
		Title:         r.Title.String,
		ImdbID:        r.ImdbID.String,
		CoverURL:      r.CoverURL.String,
		Genres:        util.SplitList(r.Genres.String),
		LanguageCodes: util.SplitList(r.LanguageCodes.String),
	}
	if r.Rating.Valid {
		m.Rating = domain.Float64Ptr(r.Rating.Float64)
	}
	if r.Year.Valid {
		m.Year = domain.IntPtr(int(r.Year.Int64))
	}
	if r.Score.Valid {
		m.Score = domain.Float64Ptr(r.Score.Float64)
	}
	if r.ValidDate.Valid {
		m.ValidDate = domain.TimePtr(r.ValidDate.Time)
	}
	return m
}

// SQLLoader reads informations and trending categories from the configured
// database. A connection is opened per Load and closed before returning.
type SQLLoader struct {
	db      config.DatabaseConfig
	sqlDir  string
	queries config.QueriesConfig
	opts    []domain.CategoryOption
	logger  *zap.Logger
}

func NewSQL(cfg *config.Config, logger *zap.Logger, opts ...domain.CategoryOption) *SQLLoader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SQLLoader{
		db:      cfg.Database,
		sqlDir:  cfg.Directories.SQL,
		queries: cfg.Queries,
		opts:    opts,
		logger:  logger,
	}
}

func (s *SQLLoader) Name() string {
	return "sql"
}

func (s *SQLLoader) Load(ctx context.Context, data *trends.MediaTrendsData) error {
	svc, err := database.Open(ctx, s.db, s.logger)
	if err != nil {
		return errors.NewDataSourceError("failed to connect to database", "", err)
	}
	defer func() {
		if cerr := svc.Close(); cerr != nil {
			s.logger.Warn("Failed to close database", zap.Error(cerr))
		}
	}()

	infos, err := s.readInformations(ctx, svc.DB())
	if err != nil {
		return err
	}
	data.SetInformations(infos)
	s.logger.Debug("Informations loaded",
		zap.String("driver", svc.Driver()),
		zap.Int("count", len(infos)),
	)

	categories := make([]*domain.CategoryItems, 0, 2)
	movies, err := s.readCategory(ctx, svc.DB(), domain.CategoryMovies, s.queries.TrendingMovies)
	if err != nil {
		return err
	}
	categories = append(categories, movies)

	if s.queries.TrendingSeries != "" {
		series, err := s.readCategory(ctx, svc.DB(), domain.CategorySeries, s.queries.TrendingSeries)
		if err != nil {
			return err
		}
		categories = append(categories, series)
	}

	if err := data.SetCategories(ctx, categories...); err != nil {
		return fmt.Errorf("failed to set categories: %w", err)
	}
	return nil
}

func (s *SQLLoader) queryContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.db.QueryTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.db.QueryTimeout)
}

func (s *SQLLoader) readInformations(ctx context.Context, db *sqlx.DB) (map[string]string, error) {
	infos := make(map[string]string)

	query, err := database.ReadSQL(s.queries.Informations, s.sqlDir)
	if err != nil {
		return nil, err
	}

	qctx, cancel := s.queryContext(ctx)
	defer cancel()

	rows, err := db.QueryContext(qctx, query)
	if err != nil {
		s.logQueryError(errors.NewDataSourceError("informations query failed", s.queries.Informations, err))
		return infos, nil
	}
	defer rows.Close()

	for rows.Next() {
		var name, value sql.NullString
		if err := rows.Scan(&name, &value); err != nil {
			s.logger.Warn("Skipping information row", zap.Error(err))
			continue
		}
		if name.Valid && name.String != "" {
			infos[name.String] = value.String
		}
	}
	if err := rows.Err(); err != nil {
		s.logQueryError(errors.NewDataSourceError("informations iteration failed", s.queries.Informations, err))
		return map[string]string{}, nil
	}
	return infos, nil
}

func (s *SQLLoader) readCategory(ctx context.Context, db *sqlx.DB, category, resource string) (*domain.CategoryItems, error) {
	items, err := domain.NewCategoryItems(category, nil, s.opts...)
	if err != nil {
		return nil, err
	}

	query, err := database.ReadSQL(resource, s.sqlDir)
	if err != nil {
		return nil, err
	}

	qctx, cancel := s.queryContext(ctx)
	defer cancel()

	rows, err := db.Unsafe().QueryxContext(qctx, query)
	if err != nil {
		s.logQueryError(errors.NewDataSourceError(category+" query failed", resource, err))
		return items, nil
	}
	defer rows.Close()

	for rows.Next() {
		var row mediaRow
		if err := rows.StructScan(&row); err != nil {
			s.logger.Warn("Skipping media row",
				zap.String("category", category),
				zap.Error(err),
			)
			continue
		}
		items.Append(row.ToDomain())
	}
	if err := rows.Err(); err != nil {
		s.logQueryError(errors.NewDataSourceError(category+" iteration failed", resource, err))
		items.SetItems(nil)
	}

	s.logger.Debug("Category loaded",
		zap.String("category", category),
		zap.Int("items", items.Len()),
	)
	return items, nil
}

func (s *SQLLoader) logQueryError(err *errors.DataSourceError) {
	s.logger.Error("Error during sql acquisition",
		zap.String("query", err.Query),
		zap.Error(err),
	)
}
