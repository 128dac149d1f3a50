// Cinematch - Item-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package recommend

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/cinematch/internal/config"
)

func newTestService(t *testing.T, m *Matrix, mutate func(*Options)) *Service {
	t.Helper()
	opts := DefaultOptions()
	opts.MinOverlap = 2
	opts.Workers = 2
	opts.Logger = zerolog.Nop()
	if mutate != nil {
		mutate(&opts)
	}
	return NewService(m, opts)
}

func TestServiceRecommend(t *testing.T) {
	svc := newTestService(t, abMatrix(t), nil)

	res := svc.Recommend(context.Background(), "A", 1)
	if res.Error != nil {
		t.Fatalf("Recommend() Error = %+v", res.Error)
	}
	if res.Movie != "A" {
		t.Errorf("Movie = %q, want A", res.Movie)
	}
	if len(res.Items) != 1 || res.Items[0].Title != "B" {
		t.Errorf("Items = %v, want [B]", res.Items)
	}
	if res.NotFound() {
		t.Error("NotFound() = true, want false")
	}
}

func TestServiceRecommendUnknownMovie(t *testing.T) {
	svc := newTestService(t, abMatrix(t), nil)

	res := svc.Recommend(context.Background(), "Nonexistent Movie 9999", 5)
	if !res.NotFound() {
		t.Fatalf("NotFound() = false, result = %+v", res)
	}
	if res.Error.Code != CodeMovieNotFound {
		t.Errorf("Error.Code = %q, want %q", res.Error.Code, CodeMovieNotFound)
	}
	if res.Items != nil {
		t.Errorf("Items = %v, want nil for an unknown movie", res.Items)
	}
	if !errors.Is(res.Err(), ErrUnknownMovie) {
		t.Errorf("Err() = %v, want ErrUnknownMovie", res.Err())
	}
}

func TestServiceRecommendEmptyIsNotError(t *testing.T) {
	svc := newTestService(t, abMatrix(t), func(o *Options) { o.MinOverlap = 50 })

	// The second call is served from the cache.
	for _, pass := range []string{"computed", "cached"} {
		res := svc.Recommend(context.Background(), "A", 5)
		if res.Error != nil {
			t.Fatalf("%s: Error = %+v, want nil", pass, res.Error)
		}
		if res.Items == nil || len(res.Items) != 0 {
			t.Errorf("%s: Items = %v, want empty non-nil slice", pass, res.Items)
		}

		body, err := json.Marshal(res)
		if err != nil {
			t.Fatalf("%s: Marshal() error = %v", pass, err)
		}
		if want := `{"movie":"A","recommendations":[]}`; string(body) != want {
			t.Errorf("%s: Marshal() = %s, want %s", pass, body, want)
		}
	}
}

func TestServiceRecommendCancelled(t *testing.T) {
	svc := newTestService(t, abMatrix(t), func(o *Options) { o.CacheEnabled = false })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := svc.Recommend(ctx, "A", 1)
	if res.Error == nil || res.Error.Code != CodeQueryFailed {
		t.Fatalf("Error = %+v, want %s", res.Error, CodeQueryFailed)
	}
	if !errors.Is(res.Err(), context.Canceled) {
		t.Errorf("Err() = %v, want context.Canceled", res.Err())
	}
}

func TestServiceRecommendCache(t *testing.T) {
	svc := newTestService(t, abMatrix(t), nil)
	ctx := context.Background()

	first := svc.Recommend(ctx, "A", 1)
	if svc.cache.Len() != 1 {
		t.Fatalf("cache.Len() = %d after first query, want 1", svc.cache.Len())
	}

	first.Items[0].Title = "mutated"

	second := svc.Recommend(ctx, "A", 1)
	if second.Items[0].Title != "B" {
		t.Errorf("cached Items[0].Title = %q, want B", second.Items[0].Title)
	}
	if stats := svc.cache.GetStats(); stats.Hits != 1 {
		t.Errorf("cache hits = %d, want 1", stats.Hits)
	}

	// Unknown movies are not cached.
	svc.Recommend(ctx, "Missing", 1)
	if svc.cache.Len() != 1 {
		t.Errorf("cache.Len() = %d after unknown query, want 1", svc.cache.Len())
	}
}

func TestServiceIdempotent(t *testing.T) {
	svc := newTestService(t, rankingMatrix(t), func(o *Options) { o.CacheEnabled = false })
	ctx := context.Background()

	if a, b := svc.Recommend(ctx, "X", 5), svc.Recommend(ctx, "X", 5); !reflect.DeepEqual(a, b) {
		t.Errorf("Recommend() not idempotent: %+v vs %+v", a, b)
	}
	if a, b := svc.Popular(ctx, 5), svc.Popular(ctx, 5); !reflect.DeepEqual(a, b) {
		t.Errorf("Popular() not idempotent: %+v vs %+v", a, b)
	}
}

func TestServiceClampN(t *testing.T) {
	svc := newTestService(t, rankingMatrix(t), func(o *Options) {
		o.DefaultPopular = 2
		o.MaxResults = 1
	})

	tests := []struct {
		name string
		n    int
		def  int
		want int
	}{
		{"zero uses default", 0, 2, 1},
		{"negative uses default", -4, 2, 1},
		{"capped", 10, 2, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := svc.clampN(tt.n, tt.def); got != tt.want {
				t.Errorf("clampN(%d, %d) = %d, want %d", tt.n, tt.def, got, tt.want)
			}
		})
	}

	if got := svc.Popular(context.Background(), 0); len(got.Items) != 1 {
		t.Errorf("Popular(0) returned %d items, want 1 (default capped by max)", len(got.Items))
	}
}

func TestServicePopular(t *testing.T) {
	svc := newTestService(t, rankingMatrix(t), nil)

	got := svc.Popular(context.Background(), 2)
	if len(got.Items) != 2 || got.Items[0].Title != "Y" || got.Items[1].Title != "X" {
		t.Errorf("Popular(2) = %v, want [Y X]", got.Items)
	}

	all := svc.Popular(context.Background(), 0)
	if len(all.Items) != 3 {
		t.Errorf("Popular(0) returned %d items, want 3 (default 20 capped by titles)", len(all.Items))
	}
}

func TestServiceTopRated(t *testing.T) {
	svc := newTestService(t, rankingMatrix(t), func(o *Options) { o.TopRatedMinRatings = 501 })
	ctx := context.Background()

	if got := svc.TopRated(ctx, 5, -1); len(got.Items) != 1 || got.Items[0].Title != "Y" {
		t.Errorf("TopRated(default floor) = %v, want [Y]", got.Items)
	}
	if got := svc.TopRated(ctx, 5, 0); len(got.Items) != 3 || got.Items[0].Title != "Z" {
		t.Errorf("TopRated(floor 0) = %v, want Z first", got.Items)
	}
}

func TestServiceCatalog(t *testing.T) {
	m := rankingMatrix(t)
	svc := newTestService(t, m, nil)

	if got := svc.Titles(); !reflect.DeepEqual(got, []string{"X", "Y", "Z"}) {
		t.Errorf("Titles() = %v, want [X Y Z]", got)
	}
	if got := svc.Browse(); len(got) != 3 {
		t.Errorf("len(Browse()) = %d, want 3", len(got))
	}
	if got := svc.Stats(); got.TotalRatings != 1004 {
		t.Errorf("Stats().TotalRatings = %d, want 1004", got.TotalRatings)
	}
	if svc.Matrix() != m {
		t.Error("Matrix() does not return the constructed matrix")
	}
}

func TestServiceCleanupCache(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		svc := newTestService(t, abMatrix(t), func(o *Options) { o.CacheEnabled = false })
		if removed, remaining := svc.CleanupCache(); removed != 0 || remaining != 0 {
			t.Errorf("CleanupCache() = (%d, %d), want (0, 0)", removed, remaining)
		}
	})

	t.Run("expired entries removed", func(t *testing.T) {
		svc := newTestService(t, abMatrix(t), func(o *Options) { o.CacheTTL = time.Millisecond })
		svc.Recommend(context.Background(), "A", 1)
		svc.Recommend(context.Background(), "B", 1)

		time.Sleep(5 * time.Millisecond)

		removed, remaining := svc.CleanupCache()
		if removed != 2 || remaining != 0 {
			t.Errorf("CleanupCache() = (%d, %d), want (2, 0)", removed, remaining)
		}
	})
}

func TestOptionsFromConfig(t *testing.T) {
	cfg := config.RecommendConfig{
		MinOverlap:         30,
		DefaultSimilar:     7,
		DefaultPopular:     9,
		MaxResults:         40,
		TopRatedMinRatings: 15,
		Workers:            3,
		CacheEnabled:       true,
		CacheTTL:           time.Minute,
	}

	opts := OptionsFromConfig(cfg, zerolog.Nop())
	if opts.MinOverlap != 30 || opts.DefaultSimilar != 7 || opts.DefaultPopular != 9 {
		t.Errorf("OptionsFromConfig() = %+v", opts)
	}
	if opts.MaxResults != 40 || opts.TopRatedMinRatings != 15 || opts.Workers != 3 {
		t.Errorf("OptionsFromConfig() = %+v", opts)
	}
	if !opts.CacheEnabled || opts.CacheTTL != time.Minute {
		t.Errorf("OptionsFromConfig() cache = %v/%v, want true/1m", opts.CacheEnabled, opts.CacheTTL)
	}
}
