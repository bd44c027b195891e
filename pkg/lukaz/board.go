package lukaz

import (
	"context"
	"fmt"
	"net/http"
)

// ===================================================================
// Boards
// ===================================================================
// All methods target /board/ and /board/{id}

// GetBoards retrieves every board the user owns or has access to.
func (c *Client) GetBoards(ctx context.Context) ([]Board, error) {
	var boards []Board
	if err := c.doRequest(ctx, http.MethodGet, "/board/", nil, &boards); err != nil {
		return nil, fmt.Errorf("failed to get boards: %w", err)
	}

	return boards, nil
}

// GetBoard retrieves a single board.
func (c *Client) GetBoard(ctx context.Context, id string) (*Board, error) {
	path, err := entityPath("/board/", boardID(id))
	if err != nil {
		return nil, err
	}

	var board Board
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &board); err != nil {
		return nil, fmt.Errorf("failed to get board: %w", err)
	}

	return &board, nil
}

// CreateBoard creates a new board. A board collects prompts, their results and
// the documents uploaded as context.
func (c *Client) CreateBoard(ctx context.Context, body CreateBoard) (*Ack, error) {
	body.Options = body.Options.withDefaults()

	ack := Ack{OK: true}
	if err := c.doRequest(ctx, http.MethodPost, "/board/", body, &ack); err != nil {
		return nil, fmt.Errorf("failed to create board: %w", err)
	}

	return &ack, nil
}

// UpdateBoard changes the description, options or roles of a board.
func (c *Client) UpdateBoard(ctx context.Context, id string, body UpdateBoard) (*Ack, error) {
	path, err := entityPath("/board/", boardID(id))
	if err != nil {
		return nil, err
	}

	ack := Ack{OK: true}
	if err := c.doRequest(ctx, http.MethodPost, path, body, &ack); err != nil {
		return nil, fmt.Errorf("failed to update board: %w", err)
	}

	return &ack, nil
}

// DeleteBoard soft-deletes a board by posting {"deleted": true} to it.
func (c *Client) DeleteBoard(ctx context.Context, id string) (*Ack, error) {
	path, err := entityPath("/board/", boardID(id))
	if err != nil {
		return nil, err
	}

	ack := Ack{OK: true}
	if err := c.doRequest(ctx, http.MethodPost, path, softDelete, &ack); err != nil {
		return nil, fmt.Errorf("failed to delete board: %w", err)
	}

	return &ack, nil
}
