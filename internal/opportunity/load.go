package opportunity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"golang.org/x/sync/errgroup"
)

// envelope is the response shape of GET /api/opportunities.
type envelope struct {
	Opportunities []Opportunity `json:"opportunities"`
}

// Load decodes opportunities from r. Both a bare JSON array and the API
// envelope {"opportunities": [...]} are accepted. Record order is preserved.
func Load(r io.Reader) ([]Opportunity, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, nil
	}

	if data[0] == '[' {
		var opps []Opportunity
		if err := json.Unmarshal(data, &opps); err != nil {
			return nil, fmt.Errorf("decoding opportunity list: %w", err)
		}
		return opps, nil
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("decoding opportunity envelope: %w", err)
	}
	return env.Opportunities, nil
}

// LoadFile reads a single export file.
func LoadFile(path string) ([]Opportunity, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	opps, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return opps, nil
}

// LoadFiles reads every path concurrently and concatenates the results in
// argument order. The first failure cancels the remaining reads.
func LoadFiles(ctx context.Context, paths []string) ([]Opportunity, error) {
	results := make([][]Opportunity, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	for i, p := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			opps, err := LoadFile(p)
			if err != nil {
				return err
			}
			results[i] = opps
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []Opportunity
	for _, r := range results {
		all = append(all, r...)
	}
	return all, nil
}
