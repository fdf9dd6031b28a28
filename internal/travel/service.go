package travel

import (
	"time"

	"github.com/handiism/travel-discovery/internal/loader"
	"github.com/handiism/travel-discovery/internal/model"
)

const (
	// DefaultBaseURL is the public travel discovery API.
	DefaultBaseURL = "https://travel.letsbuildthatapp.com"

	// CategoryPath serves a JSON array of places for a category name.
	CategoryPath = "/travel_discovery/category"

	// DestinationPath serves a JSON object describing a destination.
	DestinationPath = "/travel_discovery/destination"

	// DefaultCategoryDelay paces the category screen: its state resolves
	// this long after the response arrives.
	DefaultCategoryDelay = 3 * time.Second
)

// Config holds what a Service needs to build loaders.
type Config struct {
	BaseURL       string
	CategoryDelay time.Duration
	Fetcher       loader.Fetcher
	Dispatcher    loader.Dispatcher
	OnEvent       func(loader.Event)
}

// Service creates one loader per screen for the two travel endpoints.
//
// Example usage:
//
//	svc := NewService(Config{
//	    BaseURL:       DefaultBaseURL,
//	    CategoryDelay: DefaultCategoryDelay,
//	    Fetcher:       http.NewClient(),
//	})
//
//	places := svc.Category("Art")
//	defer places.Close()
//
//	state, _ := places.Wait(ctx)
//	for _, p := range state.Payload {
//	    fmt.Println(p.Name)
//	}
type Service struct {
	cfg Config
}

// NewService creates a Service. An empty BaseURL falls back to DefaultBaseURL.
func NewService(cfg Config) *Service {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	return &Service{cfg: cfg}
}

// WithDispatcher returns a copy of the service whose loaders resolve on d.
func (s *Service) WithDispatcher(d loader.Dispatcher) *Service {
	cfg := s.cfg
	cfg.Dispatcher = d
	return &Service{cfg: cfg}
}

// BaseURL returns the API root used for new loaders.
func (s *Service) BaseURL() string {
	return s.cfg.BaseURL
}

// Category starts loading the place listing for a category name.
//
// The state resolves no sooner than CategoryDelay after the response.
func (s *Service) Category(name string) *loader.Loader[model.PlaceList] {
	return loader.New(loader.Options[model.PlaceList]{
		Name:       name,
		BaseURL:    s.cfg.BaseURL,
		Path:       CategoryPath,
		MinDelay:   s.cfg.CategoryDelay,
		Fetcher:    s.cfg.Fetcher,
		Decode:     DecodePlaceList,
		Dispatcher: s.cfg.Dispatcher,
		OnEvent:    s.cfg.OnEvent,
	})
}

// Destination starts loading the detail of a destination name.
func (s *Service) Destination(name string) *loader.Loader[model.DestinationDetail] {
	return loader.New(loader.Options[model.DestinationDetail]{
		Name:       name,
		BaseURL:    s.cfg.BaseURL,
		Path:       DestinationPath,
		Fetcher:    s.cfg.Fetcher,
		Decode:     DecodeDestinationDetail,
		Dispatcher: s.cfg.Dispatcher,
		OnEvent:    s.cfg.OnEvent,
	})
}
