// Package batch runs travel loaders for many names at once, for the
// command-line client.
//
// # Manager
//
// The Manager creates one loader per name, waits for each to resolve and
// collects the terminal states in input order:
//
//	manager := batch.NewManager(settings, func(event loader.Event) {
//	    fmt.Println(event.Message)
//	})
//
//	results, err := manager.Run(ctx, batch.KindCategory, []string{"Art", "Food"})
//	for _, r := range results {
//	    if !r.OK() {
//	        fmt.Println(r.Name, r.Message)
//	    }
//	}
//
// # Concurrency
//
// At most settings.MaxConcurrentLoads loaders are in flight. Each loader is
// still independent: one failure does not stop the others.
package batch
