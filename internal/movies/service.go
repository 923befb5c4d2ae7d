package movies

import (
	"context"
	"errors"

	"cinebook/internal/shared/config"
	"cinebook/internal/shared/constants"
	"cinebook/pkg/cache"
	"cinebook/pkg/logger"

	"github.com/google/uuid"
)

type Service interface {
	ListMovies(ctx context.Context, query MovieListQuery) ([]Movie, error)
	GetMovieDetail(ctx context.Context, movieID uuid.UUID) (*MovieDetailResponse, error)
	CreateMovie(ctx context.Context, req CreateMovieRequest) (*Movie, error)
}

type service struct {
	repo  Repository
	cache cache.Service
	cfg   *config.Config
	log   *logger.Logger
}

func NewService(repo Repository, cacheService cache.Service, cfg *config.Config) Service {
	return &service{
		repo:  repo,
		cache: cacheService,
		cfg:   cfg,
		log:   logger.GetDefault(),
	}
}

func (s *service) ListMovies(ctx context.Context, query MovieListQuery) ([]Movie, error) {
	movies, err := s.repo.Search(ctx, query.Search)
	if err != nil {
		return nil, err
	}
	if movies == nil {
		movies = []Movie{}
	}
	return movies, nil
}

func (s *service) GetMovieDetail(ctx context.Context, movieID uuid.UUID) (*MovieDetailResponse, error) {
	cacheKey := constants.MovieDetailKey(movieID.String())

	var cached MovieDetailResponse
	if err := s.cache.Get(ctx, cacheKey, &cached); err == nil {
		return &cached, nil
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		s.log.WithError(err).Warn("movie detail cache read failed", "movie_id", movieID)
	}

	movie, err := s.repo.GetByID(ctx, movieID)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.GetShowsForMovie(ctx, movieID)
	if err != nil {
		return nil, err
	}

	detail := &MovieDetailResponse{
		Movie:    *movie,
		Theaters: groupByTheater(rows),
	}

	if err := s.cache.Set(ctx, cacheKey, detail, s.cfg.Redis.MovieDetailTTL); err != nil {
		s.log.WithError(err).Warn("movie detail cache write failed", "movie_id", movieID)
	}

	return detail, nil
}

func (s *service) CreateMovie(ctx context.Context, req CreateMovieRequest) (*Movie, error) {
	movie := &Movie{
		Title:       req.Title,
		PosterURL:   req.PosterURL,
		Description: req.Description,
		Genre:       req.Genre,
		Rating:      req.Rating,
		Votes:       req.Votes,
		Duration:    req.Duration,
		ReleaseDate: req.ReleaseDate,
	}

	if err := s.repo.Create(ctx, movie); err != nil {
		return nil, err
	}
	return movie, nil
}

// groupByTheater folds the ordered join rows into one entry per
// theater. Rows arrive sorted by theater name then show time, so a
// theater's shows stay in chronological order.
func groupByTheater(rows []movieShowRow) []TheaterShows {
	grouped := []TheaterShows{}
	index := make(map[string]int)

	for _, row := range rows {
		key := row.TheaterID.String()
		pos, ok := index[key]
		if !ok {
			grouped = append(grouped, TheaterShows{
				TheaterID: key,
				Name:      row.TheaterName,
				Location:  row.TheaterLoc,
				Shows:     []ShowTime{},
			})
			pos = len(grouped) - 1
			index[key] = pos
		}

		grouped[pos].Shows = append(grouped[pos].Shows, ShowTime{
			ShowID:        row.ShowID.String(),
			ShowTime:      row.ShowTime,
			BaseSeatPrice: row.BaseSeatPrice,
			Screen: ScreenInfo{
				ScreenID:     row.ScreenID.String(),
				ScreenNumber: row.ScreenNumber,
			},
		})
	}

	return grouped
}
