package server

import (
	"bytes"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/papercomputeco/explorer/pkg/llm"
	"github.com/papercomputeco/explorer/pkg/render"
)

var chartTitles = map[string]string{
	"":            "Initial Probability Distribution",
	"none":        "Initial Probability Distribution",
	"temperature": "Initial vs. Temperature-Scaled Probability Distribution",
	"top_k":       "Initial vs. Top-k Sampling",
	"top_p":       "Initial vs. Top-p Sampling",
	"min_p":       "Initial vs. Min-p Sampling",
}

// handleChart renders the preset's distribution as an HTML bar chart,
// overlaid with the result of the transform given by the "transform" and
// "value" query parameters.
func (s *Server) handleChart(c *fiber.Ctx) error {
	kind := c.Query("transform")
	req := llm.TransformRequest{
		Base:      llm.Base{Preset: c.Params("preset")},
		Transform: kind,
		Value:     c.QueryFloat("value", 1),
	}

	resp, err := s.svc.Transform(c.Context(), req)
	if err != nil {
		return s.fail(c, err)
	}

	series := []render.Series{{Name: "Initial Distribution", Values: resp.Original}}
	if resp.Transform != "none" {
		series = append(series, render.Series{Name: resp.Transform, Values: resp.Transformed})
	}

	title, ok := chartTitles[kind]
	if !ok {
		title = chartTitles["none"]
	}
	var buf bytes.Buffer
	if err := render.BarChart(&buf, title, fmt.Sprintf("%q", resp.Prompt), resp.Vocabulary, series...); err != nil {
		return s.fail(c, err)
	}

	c.Type("html", "utf-8")
	return c.Send(buf.Bytes())
}
