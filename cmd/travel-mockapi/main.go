package main

import (
	"flag"
	"log"
	"net/http"

	"github.com/handiism/travel-discovery/internal/mockapi"
)

func main() {
	var (
		addrFlag     = flag.String("addr", ":8080", "Listen address")
		fixturesFlag = flag.String("fixtures", "", "Path to a fixtures JSON file (default: built-in fixtures)")
		latencyFlag  = flag.Duration("latency", 0, "Delay added before every API response")
	)

	flag.Parse()

	fixtures := mockapi.DefaultFixtures()
	if *fixturesFlag != "" {
		var err error
		fixtures, err = mockapi.LoadFixtures(*fixturesFlag)
		if err != nil {
			log.Fatalf("Error loading fixtures: %v", err)
		}
	}

	router := mockapi.NewRouter(fixtures, mockapi.Options{Latency: *latencyFlag})

	log.Printf("Travel discovery stub API listening on %s", *addrFlag)
	log.Printf("Try: curl 'http://localhost%s/travel_discovery/category?name=art'", *addrFlag)
	log.Fatal(http.ListenAndServe(*addrFlag, router))
}
