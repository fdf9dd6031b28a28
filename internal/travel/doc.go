// Package travel binds the generic loader to the travel discovery API.
//
// Two endpoints exist, identical in shape:
//
//	GET {base}/travel_discovery/category?name={name}     -> [{"name": ..., "thumbnail": ...}]
//	GET {base}/travel_discovery/destination?name={name}  -> {"description": ..., "photos": [...]}
//
// The name is lower-cased and percent-encoded ("New York" -> "new%20york").
//
// # Basic Usage
//
//	svc := travel.NewService(travel.Config{
//	    BaseURL:       travel.DefaultBaseURL,
//	    CategoryDelay: travel.DefaultCategoryDelay,
//	    Fetcher:       http.NewClient(),
//	})
//
//	details := svc.Destination("Paris")
//	state, err := details.Wait(ctx)
//
// # Pacing
//
// Category loads resolve CategoryDelay (3s by default) after the response
// arrives. Destination loads resolve as soon as the body is decoded.
package travel
