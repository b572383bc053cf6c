package moviesearch

// Movie is a search hit whose poster answered with a 2xx status.
type Movie struct {
	Title  string // truncated to 40 characters plus "..."
	Year   string
	IMDbID string
	Poster string
}

// EmptyStateMessage is the text shown when a search yields no movies.
const EmptyStateMessage = "No movie found!!! Please search for another title."
