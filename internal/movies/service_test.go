package movies

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"
	"time"

	"cinebook/internal/shared/apperrors"
	"cinebook/internal/shared/config"
	"cinebook/pkg/cache"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMovieRepo struct {
	movies   map[uuid.UUID]*Movie
	showRows map[uuid.UUID][]movieShowRow
}

func newFakeMovieRepo() *fakeMovieRepo {
	return &fakeMovieRepo{
		movies:   make(map[uuid.UUID]*Movie),
		showRows: make(map[uuid.UUID][]movieShowRow),
	}
}

func (r *fakeMovieRepo) Create(ctx context.Context, movie *Movie) error {
	movie.ID = uuid.New()
	r.movies[movie.ID] = movie
	return nil
}

func (r *fakeMovieRepo) GetByID(ctx context.Context, id uuid.UUID) (*Movie, error) {
	movie, ok := r.movies[id]
	if !ok {
		return nil, fmt.Errorf("movie %s: %w", id, apperrors.ErrNotFound)
	}
	return movie, nil
}

func (r *fakeMovieRepo) Search(ctx context.Context, search string) ([]Movie, error) {
	var out []Movie
	for _, movie := range r.movies {
		out = append(out, *movie)
	}
	return out, nil
}

func (r *fakeMovieRepo) GetShowsForMovie(ctx context.Context, movieID uuid.UUID) ([]movieShowRow, error) {
	return r.showRows[movieID], nil
}

// memCache is a map-backed cache.Service for exercising cache-aside
// behavior without Redis.
type memCache struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMemCache() *memCache {
	return &memCache{data: make(map[string][]byte)}
}

func (c *memCache) Get(ctx context.Context, key string, dest interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	raw, ok := c.data[key]
	if !ok {
		return cache.ErrCacheMiss
	}
	return json.Unmarshal(raw, dest)
}

func (c *memCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = raw
	return nil
}

func (c *memCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	return nil
}

func (c *memCache) Ping(ctx context.Context) error { return nil }

func testConfig() *config.Config {
	return &config.Config{
		Redis: config.RedisConfig{
			ShowDetailTTL:  30 * time.Second,
			MovieDetailTTL: 10 * time.Minute,
		},
	}
}

func TestGroupByTheaterPreservesOrder(t *testing.T) {
	theaterA := uuid.New()
	theaterB := uuid.New()
	base := time.Date(2026, 9, 1, 18, 0, 0, 0, time.UTC)

	// Rows arrive ordered by theater name then show time, as the join
	// produces them.
	rows := []movieShowRow{
		{ShowID: uuid.New(), ShowTime: base, TheaterID: theaterA, TheaterName: "Astor", TheaterLoc: "Downtown", ScreenID: uuid.New(), ScreenNumber: "1"},
		{ShowID: uuid.New(), ShowTime: base.Add(3 * time.Hour), TheaterID: theaterA, TheaterName: "Astor", TheaterLoc: "Downtown", ScreenID: uuid.New(), ScreenNumber: "2"},
		{ShowID: uuid.New(), ShowTime: base.Add(time.Hour), TheaterID: theaterB, TheaterName: "Rialto", TheaterLoc: "Midtown", ScreenID: uuid.New(), ScreenNumber: "1"},
	}

	grouped := groupByTheater(rows)
	require.Len(t, grouped, 2)

	assert.Equal(t, "Astor", grouped[0].Name)
	require.Len(t, grouped[0].Shows, 2)
	assert.True(t, grouped[0].Shows[0].ShowTime.Before(grouped[0].Shows[1].ShowTime))

	assert.Equal(t, "Rialto", grouped[1].Name)
	require.Len(t, grouped[1].Shows, 1)
}

func TestGroupByTheaterEmpty(t *testing.T) {
	grouped := groupByTheater(nil)
	assert.NotNil(t, grouped)
	assert.Empty(t, grouped)
}

func TestGetMovieDetailUsesCache(t *testing.T) {
	repo := newFakeMovieRepo()
	cached := newMemCache()
	svc := NewService(repo, cached, testConfig())

	movie := &Movie{Title: "Interstellar"}
	require.NoError(t, repo.Create(context.Background(), movie))
	repo.showRows[movie.ID] = []movieShowRow{
		{ShowID: uuid.New(), ShowTime: time.Now(), BaseSeatPrice: decimal.NewFromInt(250), TheaterID: uuid.New(), TheaterName: "Astor", TheaterLoc: "Downtown", ScreenID: uuid.New(), ScreenNumber: "1"},
	}

	first, err := svc.GetMovieDetail(context.Background(), movie.ID)
	require.NoError(t, err)
	require.Len(t, first.Theaters, 1)

	// Drop the backing rows; a cached detail must still be served
	repo.showRows[movie.ID] = nil

	second, err := svc.GetMovieDetail(context.Background(), movie.ID)
	require.NoError(t, err)
	assert.Len(t, second.Theaters, 1)
	assert.Equal(t, first.Movie.Title, second.Movie.Title)
}

func TestGetMovieDetailNotFound(t *testing.T) {
	svc := NewService(newFakeMovieRepo(), newMemCache(), testConfig())

	_, err := svc.GetMovieDetail(context.Background(), uuid.New())
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestListMoviesNeverReturnsNil(t *testing.T) {
	svc := NewService(newFakeMovieRepo(), newMemCache(), testConfig())

	movies, err := svc.ListMovies(context.Background(), MovieListQuery{})
	require.NoError(t, err)
	assert.NotNil(t, movies)
	assert.Empty(t, movies)
}
