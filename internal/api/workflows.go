package api

import "context"

func (c *Client) Workflows(ctx context.Context) ([]Workflow, error) {
	var out []Workflow
	if err := c.get(ctx, TagWorkflow, "/tickets/workflows/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateWorkflow(ctx context.Context, req CreateWorkflowRequest) (*CreateWorkflowResponse, error) {
	var out CreateWorkflowResponse
	if err := c.send(ctx, "POST", "/workflows/create-with-roles/", req, &out, TagWorkflow); err != nil {
		return nil, err
	}
	return &out, nil
}
