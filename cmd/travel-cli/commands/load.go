package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/handiism/travel-discovery/internal/batch"
	"github.com/handiism/travel-discovery/internal/loader"
)

func categoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "category NAME...",
		Short: "List the places of one or more categories",
		Example: `  travel-cli category Art
  travel-cli category "Live Events" Food,History`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(cmd, batch.KindCategory, args)
		},
	}
	return cmd
}

func destinationCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "destination NAME...",
		Short:   "Show the description and photos of one or more destinations",
		Example: `  travel-cli destination Paris "New York"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(cmd, batch.KindDestination, args)
		},
	}
	return cmd
}

func runBatch(cmd *cobra.Command, kind batch.Kind, args []string) error {
	var names []string
	for _, arg := range args {
		names = append(names, batch.ParseNames(arg)...)
	}
	if len(names) == 0 {
		return fmt.Errorf("no %s names given", kind)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Events arrive from several fetch goroutines.
	var mu sync.Mutex
	stderr := cmd.ErrOrStderr()
	manager := batch.NewManager(settings, func(event loader.Event) {
		mu.Lock()
		defer mu.Unlock()
		printEvent(stderr, event)
	})

	results, err := manager.Run(ctx, kind, names)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("cancelled: %w", context.Cause(ctx))
		}
		return err
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		if err := writeJSON(out, results); err != nil {
			return err
		}
	} else {
		for _, r := range results {
			writeResult(out, r)
		}
	}

	if _, failed, total := manager.GetProgress(); failed > 0 {
		return fmt.Errorf("%d of %d load(s) failed", failed, total)
	}
	return nil
}

type jsonResult struct {
	Name        string   `json:"name"`
	URL         string   `json:"url,omitempty"`
	Status      string   `json:"status"`
	Error       string   `json:"error,omitempty"`
	Places      []string `json:"places,omitempty"`
	Description string   `json:"description,omitempty"`
	Photos      []string `json:"photos,omitempty"`
}

func writeJSON(w io.Writer, results []batch.Result) error {
	out := make([]jsonResult, len(results))
	for i, r := range results {
		out[i] = jsonResult{
			Name:   r.Name,
			URL:    r.URL,
			Status: r.Status.String(),
			Error:  r.Message,
		}
		if r.Places != nil {
			out[i].Places = r.Places.Names()
		}
		if r.Detail != nil {
			out[i].Description = r.Detail.Description
			out[i].Photos = r.Detail.PhotoURLs
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func writeResult(w io.Writer, r batch.Result) {
	fmt.Fprintf(w, "%s\n", r.Name)

	if !r.OK() {
		fmt.Fprintf(w, "  ✗ %s\n\n", r.Message)
		return
	}

	switch r.Kind {
	case batch.KindCategory:
		if len(r.Places) == 0 {
			fmt.Fprintln(w, "  (no places)")
		}
		for _, p := range r.Places {
			fmt.Fprintf(w, "  • %s\n", p.Name)
		}

	case batch.KindDestination:
		fmt.Fprintf(w, "  %s\n", r.Detail.Description)
		for i, photo := range r.Detail.PhotoURLs {
			fmt.Fprintf(w, "  📷 %d: %s\n", i+1, photo)
		}
	}
	fmt.Fprintln(w)
}
