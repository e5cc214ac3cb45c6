package models

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAggregationResult_EmptyCounters(t *testing.T) {
	t.Parallel()

	result := NewAggregationResult()

	assert.Zero(t, result.Total)
	assert.Empty(t, result.ByUser)
	assert.Empty(t, result.ByEndpoint)
	assert.Empty(t, result.ByRepo)
	assert.Empty(t, result.ByService)
	assert.Empty(t, result.ByIP)
	assert.Empty(t, result.ByHour)
	assert.Empty(t, result.ByStatus)
	assert.Empty(t, result.ByUserAgent)
	assert.Empty(t, result.FlagMatches)
}

func TestTopEndpoints_OrdersByCountDescending(t *testing.T) {
	t.Parallel()

	result := NewAggregationResult()
	result.ByEndpoint["/a"] = 1
	result.ByEndpoint["/b"] = 5
	result.ByEndpoint["/c"] = 3

	top := result.TopEndpoints(50)

	require.Len(t, top, 3)
	assert.Equal(t, EndpointCount{Endpoint: "/b", Count: 5}, top[0])
	assert.Equal(t, EndpointCount{Endpoint: "/c", Count: 3}, top[1])
	assert.Equal(t, EndpointCount{Endpoint: "/a", Count: 1}, top[2])
}

func TestTopEndpoints_TiesBrokenLexicographically(t *testing.T) {
	t.Parallel()

	result := NewAggregationResult()
	result.ByEndpoint["/zeta"] = 2
	result.ByEndpoint["/alpha"] = 2
	result.ByEndpoint["/mid"] = 2

	// The ordering must be stable across runs despite map iteration order.
	for i := 0; i < 10; i++ {
		top := result.TopEndpoints(50)
		require.Len(t, top, 3)
		assert.Equal(t, "/alpha", top[0].Endpoint)
		assert.Equal(t, "/mid", top[1].Endpoint)
		assert.Equal(t, "/zeta", top[2].Endpoint)
	}
}

func TestTopEndpoints_TruncatesToN(t *testing.T) {
	t.Parallel()

	result := NewAggregationResult()
	for i := 0; i < 120; i++ {
		result.ByEndpoint[fmt.Sprintf("/endpoint-%03d", i)] = int64(i)
	}

	top := result.TopEndpoints(50)

	require.Len(t, top, 50)
	// Highest count first
	assert.Equal(t, "/endpoint-119", top[0].Endpoint)
	assert.Equal(t, int64(119), top[0].Count)
	assert.Equal(t, "/endpoint-070", top[49].Endpoint)
}

func TestTopEndpoints_FewerThanN(t *testing.T) {
	t.Parallel()

	result := NewAggregationResult()
	result.ByEndpoint["/only"] = 7

	top := result.TopEndpoints(50)

	require.Len(t, top, 1)
	assert.Equal(t, "/only", top[0].Endpoint)
}
