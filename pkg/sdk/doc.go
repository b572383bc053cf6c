// Package moviesearch provides an embeddable Go client for the movie search
// pipeline: an OMDb title search followed by a reachability probe of every
// poster, with titles truncated for display.
//
// The client runs the same pipeline the HTTP service serves, in process:
//
//	client, _ := moviesearch.New(moviesearch.WithAPIKey(os.Getenv("OMDB_API_KEY")))
//	movies, err := client.Search(ctx, "batman")
//	if errors.Is(err, moviesearch.ErrUpstreamStatus) {
//	    // OMDb answered with a non-2xx status
//	}
//	for _, m := range movies {
//	    fmt.Println(m.Title, m.Poster)
//	}
//
// An empty result slice with a nil error means nothing matched, or every
// match had an unreachable poster.
package moviesearch
