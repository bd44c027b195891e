package lukaz

import (
	"context"
	"fmt"
	"net/http"
)

// ===================================================================
// Prompts
// ===================================================================

// SubmitPrompt asks a question against a board's context. In the
// development environment the result is a fixed test answer.
func (c *Client) SubmitPrompt(ctx context.Context, board string, body PromptBody) (*PromptResult, error) {
	path, err := entityPath("/prompt/", boardID(board))
	if err != nil {
		return nil, err
	}

	var result PromptResult
	if err := c.doRequest(ctx, http.MethodPost, path, body, &result); err != nil {
		return nil, fmt.Errorf("failed to submit prompt: %w", err)
	}

	return &result, nil
}

// ListPrompts retrieves every prompt made by the user, across boards.
func (c *Client) ListPrompts(ctx context.Context) ([]Prompt, error) {
	var prompts []Prompt
	if err := c.doRequest(ctx, http.MethodGet, "/prompt/", nil, &prompts); err != nil {
		return nil, fmt.Errorf("failed to list prompts: %w", err)
	}

	return prompts, nil
}

// ListBoardPrompts retrieves every prompt of a board.
func (c *Client) ListBoardPrompts(ctx context.Context, board string) ([]Prompt, error) {
	path, err := entityPath("/prompt/", boardID(board))
	if err != nil {
		return nil, err
	}

	var prompts []Prompt
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &prompts); err != nil {
		return nil, fmt.Errorf("failed to list board prompts: %w", err)
	}

	return prompts, nil
}

// GetPrompt retrieves a prompt by ID.
func (c *Client) GetPrompt(ctx context.Context, id string) (*Prompt, error) {
	path, err := entityPath("/prompt/", promptID(id))
	if err != nil {
		return nil, err
	}

	var prompt Prompt
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &prompt); err != nil {
		return nil, fmt.Errorf("failed to get prompt: %w", err)
	}

	return &prompt, nil
}

// GetBoardPrompt retrieves a prompt scoped to the board it was made on.
func (c *Client) GetBoardPrompt(ctx context.Context, board, id string) (*Prompt, error) {
	path, err := entityPath("/prompt/", boardID(board), promptID(id))
	if err != nil {
		return nil, err
	}

	var prompt Prompt
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &prompt); err != nil {
		return nil, fmt.Errorf("failed to get board prompt: %w", err)
	}

	return &prompt, nil
}

// UpdatePrompt changes feedback, visibility, saved state or result text.
func (c *Client) UpdatePrompt(ctx context.Context, id string, body UpdatePrompt) (*Ack, error) {
	path, err := entityPath("/prompt/", promptID(id))
	if err != nil {
		return nil, err
	}

	ack := Ack{OK: true}
	if err := c.doRequest(ctx, http.MethodPost, path, body, &ack); err != nil {
		return nil, fmt.Errorf("failed to update prompt: %w", err)
	}

	return &ack, nil
}

// DeletePrompt soft-deletes a prompt by posting {"deleted": true} to it.
func (c *Client) DeletePrompt(ctx context.Context, id string) (*Ack, error) {
	path, err := entityPath("/prompt/", promptID(id))
	if err != nil {
		return nil, err
	}

	ack := Ack{OK: true}
	if err := c.doRequest(ctx, http.MethodPost, path, softDelete, &ack); err != nil {
		return nil, fmt.Errorf("failed to delete prompt: %w", err)
	}

	return &ack, nil
}

// GetAudio synthesizes speech for a prompt's result and returns a playable URL.
func (c *Client) GetAudio(ctx context.Context, id string) (*Audio, error) {
	path, err := entityPath("/audio/", promptID(id))
	if err != nil {
		return nil, err
	}

	var audio Audio
	if err := c.doRequest(ctx, http.MethodPost, path, nil, &audio); err != nil {
		return nil, fmt.Errorf("failed to get audio: %w", err)
	}

	return &audio, nil
}

// GetTranscript converts recorded audio into prompt text.
func (c *Client) GetTranscript(ctx context.Context, board string, audio Transcript) (*TranscriptResult, error) {
	path, err := entityPath("/transcript/", boardID(board))
	if err != nil {
		return nil, err
	}

	var transcript TranscriptResult
	if err := c.doRequest(ctx, http.MethodPost, path, audio, &transcript); err != nil {
		return nil, fmt.Errorf("failed to get transcript: %w", err)
	}

	return &transcript, nil
}
