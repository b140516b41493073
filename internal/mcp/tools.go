package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/blackwell-systems/nichewatch/internal/intel"
	"github.com/blackwell-systems/nichewatch/internal/opportunity"
)

// InsightsResult is the get_insights payload.
type InsightsResult struct {
	Type     string          `json:"type,omitempty"`
	Insights []intel.Insight `json:"insights"`
}

var (
	commandCenterSchema = json.RawMessage(`{"type":"object","properties":{"top_n":{"type":"integer","description":"Number of top opportunities to return (default from config, 0 for all)"}},"additionalProperties":false}`)
	insightsSchema      = json.RawMessage(`{"type":"object","properties":{"type":{"type":"string","enum":["hot","rising","warning","info"],"description":"Only return insights of this type"}},"additionalProperties":false}`)
	explainSchema       = json.RawMessage(`{"type":"object","properties":{"ref":{"type":"string","description":"Opportunity ID, full name, or unique name prefix"}},"required":["ref"],"additionalProperties":false}`)
)

func addTools(s *Server) {
	s.registerTool(toolDef{
		Name:        "get_command_center",
		Description: "KPIs, the insight feed, and the top-ranked opportunities from the current export.",
		InputSchema: commandCenterSchema,
		Handler:     s.handleGetCommandCenter,
	})
	s.registerTool(toolDef{
		Name:        "get_insights",
		Description: "The prioritized insight feed, optionally filtered by type.",
		InputSchema: insightsSchema,
		Handler:     s.handleGetInsights,
	})
	s.registerTool(toolDef{
		Name:        "explain_opportunity",
		Description: "Signal levels, summary, ranking reasons, builder Q&A, evidence and paths forward for one opportunity.",
		InputSchema: explainSchema,
		Handler:     s.handleExplainOpportunity,
	})
}

// ranked loads the export and orders it by score.
func (s *Server) ranked(ctx context.Context) ([]opportunity.Opportunity, error) {
	opps, err := s.load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading opportunities: %w", err)
	}
	return intel.SortByScore(opps), nil
}

func (s *Server) handleGetCommandCenter(ctx context.Context, args json.RawMessage) (any, error) {
	var params struct {
		TopN *int `json:"top_n"`
	}
	if err := json.Unmarshal(args, &params); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}
	topN := s.topN
	if params.TopN != nil {
		topN = *params.TopN
	}

	opps, err := s.ranked(ctx)
	if err != nil {
		return nil, err
	}
	return s.engine.CommandCenter(opps, topN), nil
}

func (s *Server) handleGetInsights(ctx context.Context, args json.RawMessage) (any, error) {
	var params struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(args, &params); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}
	var filter intel.InsightType
	if params.Type != "" {
		t, err := intel.ParseInsightType(params.Type)
		if err != nil {
			return nil, err
		}
		filter = t
	}

	opps, err := s.ranked(ctx)
	if err != nil {
		return nil, err
	}

	insights := intel.GenerateInsights(opps)
	res := InsightsResult{Type: string(filter), Insights: make([]intel.Insight, 0, len(insights))}
	for _, in := range insights {
		if filter == "" || in.Type == filter {
			res.Insights = append(res.Insights, in)
		}
	}
	return res, nil
}

func (s *Server) handleExplainOpportunity(ctx context.Context, args json.RawMessage) (any, error) {
	var params struct {
		Ref string `json:"ref"`
	}
	if err := json.Unmarshal(args, &params); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}
	if params.Ref == "" {
		return nil, errors.New("ref is required")
	}

	opps, err := s.ranked(ctx)
	if err != nil {
		return nil, err
	}
	o, err := opportunity.Find(opps, params.Ref)
	if err != nil {
		return nil, err
	}
	return s.engine.Explain(o), nil
}
