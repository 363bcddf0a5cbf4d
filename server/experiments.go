package server

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/papercomputeco/explorer/pkg/experiment"
	"github.com/papercomputeco/explorer/pkg/llm"
)

// errExperimentsDisabled is answered with 404 when recording is off.
var errExperimentsDisabled = llm.ErrorResponse{Error: "experiment log disabled", Kind: "not_found"}

// handleExperimentStats returns statistics about the experiment log.
func (s *Server) handleExperimentStats(c *fiber.Ctx) error {
	storer := s.svc.Storer()
	if storer == nil {
		return c.Status(fiber.StatusNotFound).JSON(errExperimentsDisabled)
	}
	ctx := c.Context()

	nodes, err := storer.List(ctx)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(llm.ErrorResponse{Error: "failed to list nodes"})
	}

	roots, err := storer.Roots(ctx)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(llm.ErrorResponse{Error: "failed to get roots"})
	}

	leaves, err := storer.Leaves(ctx)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(llm.ErrorResponse{Error: "failed to get leaves"})
	}

	stats := map[string]any{
		"total_nodes": len(nodes),
		"base_count":  len(roots),
		"leaf_count":  len(leaves),
	}

	return c.JSON(stats)
}

// handleGetNode returns a single node by its hash.
func (s *Server) handleGetNode(c *fiber.Ctx) error {
	storer := s.svc.Storer()
	if storer == nil {
		return c.Status(fiber.StatusNotFound).JSON(errExperimentsDisabled)
	}

	node, err := storer.Get(c.Context(), c.Params("hash"))
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(node)
}

// handleListHistories returns every recorded run, one per leaf node.
func (s *Server) handleListHistories(c *fiber.Ctx) error {
	storer := s.svc.Storer()
	if storer == nil {
		return c.Status(fiber.StatusNotFound).JSON(errExperimentsDisabled)
	}
	ctx := c.Context()

	leaves, err := storer.Leaves(ctx)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(llm.ErrorResponse{Error: "failed to get leaves"})
	}

	histories := make([]experiment.History, 0, len(leaves))
	for _, leaf := range leaves {
		history, err := experiment.BuildHistory(ctx, storer, leaf.Hash)
		if err != nil {
			s.logger.Warn("failed to build history for leaf", zap.String("hash", leaf.Hash), zap.Error(err))
			continue
		}
		histories = append(histories, *history)
	}

	return c.JSON(map[string]any{
		"count":     len(histories),
		"histories": histories,
	})
}

// handleGetHistory returns the run leading up to a node, base first.
func (s *Server) handleGetHistory(c *fiber.Ctx) error {
	storer := s.svc.Storer()
	if storer == nil {
		return c.Status(fiber.StatusNotFound).JSON(errExperimentsDisabled)
	}

	history, err := experiment.BuildHistory(c.Context(), storer, c.Params("hash"))
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(history)
}
