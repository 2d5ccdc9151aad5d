package geocode

import (
	"context"
	"errors"
	"testing"
	"time"

	"mimapa/internal/domain/entity"
	"mimapa/internal/infra/cache"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingGeocoder struct {
	geocodeCalls int
	reverseCalls int
	err          error
}

func (g *countingGeocoder) Geocode(context.Context, string) (*entity.GeocodeResult, error) {
	g.geocodeCalls++
	if g.err != nil {
		return nil, g.err
	}

	return &entity.GeocodeResult{Found: true, Point: entity.GeoPoint{Latitud: 40.4, Longitud: -3.7}}, nil
}

func (g *countingGeocoder) Reverse(context.Context, entity.GeoPoint) (*entity.ReverseGeocodeResult, error) {
	g.reverseCalls++
	if g.err != nil {
		return nil, g.err
	}

	return &entity.ReverseGeocodeResult{Found: false}, nil
}

type recordedLookup struct {
	operation string
	hit       bool
}

type fakeRecorder struct {
	lookups []recordedLookup
}

func (r *fakeRecorder) RecordHTTPRequest(string, string, int, time.Duration) {}
func (r *fakeRecorder) RecordReviewMutation(string)                           {}
func (r *fakeRecorder) RecordUpload(int64)                                    {}
func (r *fakeRecorder) RecordReviewEvent(string, string)                      {}
func (r *fakeRecorder) RecordGeocodeCache(operation string, hit bool) {
	r.lookups = append(r.lookups, recordedLookup{operation: operation, hit: hit})
}

func newCachedForTest(t *testing.T, next *countingGeocoder) (*cachedGeocoder, *fakeRecorder, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	raw := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = raw.Close() })

	recorder := &fakeRecorder{}
	geocoder := NewCachedGeocoder(next, cache.NewWithClient(raw), time.Hour, recorder, discardLogger())

	return geocoder.(*cachedGeocoder), recorder, server
}

func TestCachedGeocoder_Geocode(t *testing.T) {
	ctx := context.Background()
	next := &countingGeocoder{}
	geocoder, recorder, server := newCachedForTest(t, next)

	first, err := geocoder.Geocode(ctx, "Madrid")
	require.NoError(t, err)
	second, err := geocoder.Geocode(ctx, "  madrid ")
	require.NoError(t, err)

	assert.Equal(t, 1, next.geocodeCalls, "normalized query hits the cache")
	assert.Equal(t, first, second)
	assert.Equal(t, []recordedLookup{{"search", false}, {"search", true}}, recorder.lookups)
	assert.True(t, server.Exists("mimapa:geocode:search:madrid"))
	assert.Equal(t, time.Hour, server.TTL("mimapa:geocode:search:madrid"))
}

func TestCachedGeocoder_ReverseCachesMisses(t *testing.T) {
	ctx := context.Background()
	next := &countingGeocoder{}
	geocoder, _, _ := newCachedForTest(t, next)

	point := entity.GeoPoint{Latitud: 0.1, Longitud: 0.2}
	for range 3 {
		result, err := geocoder.Reverse(ctx, point)
		require.NoError(t, err)
		assert.False(t, result.Found)
	}

	assert.Equal(t, 1, next.reverseCalls)
}

func TestCachedGeocoder_ErrorsAreNotCached(t *testing.T) {
	ctx := context.Background()
	next := &countingGeocoder{err: errors.New("upstream down")}
	geocoder, _, server := newCachedForTest(t, next)

	_, err := geocoder.Geocode(ctx, "Madrid")
	assert.Error(t, err)
	_, err = geocoder.Geocode(ctx, "Madrid")
	assert.Error(t, err)

	assert.Equal(t, 2, next.geocodeCalls)
	assert.Empty(t, server.Keys())
}

func TestCachedGeocoder_RedisDownFallsThrough(t *testing.T) {
	ctx := context.Background()
	next := &countingGeocoder{}
	geocoder, _, server := newCachedForTest(t, next)
	server.Close()

	result, err := geocoder.Geocode(ctx, "Madrid")
	require.NoError(t, err)
	assert.True(t, result.Found)
	assert.Equal(t, 1, next.geocodeCalls)
}
