package db

// TagFilter is an equality pre-filter on TAG fields. All entries must match
// (conjunction).
type TagFilter map[string]string

// KNNQuery is the input for vector similarity search.
type KNNQuery struct {
	IndexName    string
	Filter       TagFilter
	Vector       []float32
	K            int
	ReturnFields []string
}

// ListQuery is the input for filtered, paginated listing via FT.SEARCH.
type ListQuery struct {
	IndexName    string
	Filter       TagFilter
	Offset       int
	Limit        int
	ReturnFields []string
}

// SearchResult is the output of a search operation.
type SearchResult struct {
	Total   int
	Entries []SearchEntry
}

// SearchEntry is a single document hit from a search.
type SearchEntry struct {
	Key    string
	Score  float64
	Fields map[string]string
}
