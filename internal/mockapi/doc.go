// Package mockapi serves the travel discovery endpoints from fixture data,
// for local development and tests.
//
//	srv := httptest.NewServer(mockapi.NewRouter(mockapi.DefaultFixtures(), mockapi.Options{}))
//	defer srv.Close()
//
// Fixtures can force a status ("statuses") or a malformed body ("malformed")
// for chosen names, to exercise the failure paths of a client.
package mockapi
