package models

import "sort"

// AggregationResult holds the counters produced by one full scan of the logs
// that fall inside a window. A fresh result is allocated per scan and
// discarded after serialization; nothing is shared across requests.
//
// Total counts every line whose timestamp is inside the window. ByIP, ByUser,
// ByStatus and ByHour derive from fixed-position tokens and sum to Total
// (status may be counted under the empty key for short lines). ByEndpoint,
// ByRepo, ByService and ByUserAgent depend on the quoted request parsing and
// may sum to less than Total.
type AggregationResult struct {
	Total       int64
	ByUser      map[string]int64
	ByEndpoint  map[string]int64
	ByRepo      map[string]int64
	ByService   map[string]int64
	ByIP        map[string]int64
	ByHour      map[string]int64
	ByStatus    map[string]int64
	ByUserAgent map[string]int64
	FlagMatches map[string]int64
}

func NewAggregationResult() *AggregationResult {
	return &AggregationResult{
		ByUser:      make(map[string]int64),
		ByEndpoint:  make(map[string]int64),
		ByRepo:      make(map[string]int64),
		ByService:   make(map[string]int64),
		ByIP:        make(map[string]int64),
		ByHour:      make(map[string]int64),
		ByStatus:    make(map[string]int64),
		ByUserAgent: make(map[string]int64),
		FlagMatches: make(map[string]int64),
	}
}

// EndpointCount is one entry of the by-endpoint ranking.
type EndpointCount struct {
	Endpoint string
	Count    int64
}

// TopEndpoints returns the n highest-count endpoints. The ordering is
// deterministic: higher count first, ties broken by lexicographically
// smaller endpoint.
func (r *AggregationResult) TopEndpoints(n int) []EndpointCount {
	entries := make([]EndpointCount, 0, len(r.ByEndpoint))
	for endpoint, count := range r.ByEndpoint {
		entries = append(entries, EndpointCount{Endpoint: endpoint, Count: count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Endpoint < entries[j].Endpoint
	})
	if len(entries) > n {
		entries = entries[:n]
	}
	return entries
}
