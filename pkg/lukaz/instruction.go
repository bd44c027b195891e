package lukaz

import (
	"context"
	"fmt"
	"net/http"
)

// ===================================================================
// Instructions
// ===================================================================
// Instructions are scoped to the user, not to a board.

// CreateInstruction stores a new instruction and returns its ID.
func (c *Client) CreateInstruction(ctx context.Context, body Instruction) (*InstructionID, error) {
	var id InstructionID
	if err := c.doRequest(ctx, http.MethodPost, "/instruction/", body, &id); err != nil {
		return nil, fmt.Errorf("failed to create instruction: %w", err)
	}

	return &id, nil
}

// GetInstruction retrieves an instruction by ID.
func (c *Client) GetInstruction(ctx context.Context, id string) (*Instruction, error) {
	path, err := entityPath("/instruction/", instructionID(id))
	if err != nil {
		return nil, err
	}

	var instruction Instruction
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &instruction); err != nil {
		return nil, fmt.Errorf("failed to get instruction: %w", err)
	}

	return &instruction, nil
}

// GetInstructions retrieves every instruction created by the user.
func (c *Client) GetInstructions(ctx context.Context) ([]Instruction, error) {
	var instructions []Instruction
	if err := c.doRequest(ctx, http.MethodGet, "/instruction/", nil, &instructions); err != nil {
		return nil, fmt.Errorf("failed to get instructions: %w", err)
	}

	return instructions, nil
}

// UpdateInstruction replaces the fields of an instruction.
func (c *Client) UpdateInstruction(ctx context.Context, id string, body Instruction) (*Ack, error) {
	path, err := entityPath("/instruction/", instructionID(id))
	if err != nil {
		return nil, err
	}

	ack := Ack{OK: true}
	if err := c.doRequest(ctx, http.MethodPost, path, body, &ack); err != nil {
		return nil, fmt.Errorf("failed to update instruction: %w", err)
	}

	return &ack, nil
}

// DeleteInstruction soft-deletes an instruction by posting {"deleted": true}.
func (c *Client) DeleteInstruction(ctx context.Context, id string) (*Ack, error) {
	path, err := entityPath("/instruction/", instructionID(id))
	if err != nil {
		return nil, err
	}

	ack := Ack{OK: true}
	if err := c.doRequest(ctx, http.MethodPost, path, softDelete, &ack); err != nil {
		return nil, fmt.Errorf("failed to delete instruction: %w", err)
	}

	return &ack, nil
}
