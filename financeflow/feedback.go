package financeflow

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
)

// FeedbackInput is the payload for submitting feedback. Attachment is
// optional; when present the request is sent as a multipart form instead of
// JSON.
type FeedbackInput struct {
	Subject        string
	Message        string
	AttachmentName string
	Attachment     io.Reader
}

// ListFeedback retrieves the caller's submitted feedback entries.
func (c *Client) ListFeedback(ctx context.Context) ([]Feedback, error) {
	var envelope struct {
		Feedback []Feedback `json:"feedback"`
	}
	if err := c.do(ctx, apiRequest{method: http.MethodGet, path: epFeedback, out: &envelope}); err != nil {
		return nil, err
	}
	return envelope.Feedback, nil
}

// CreateFeedback submits a feedback entry, as a multipart form when an
// attachment is included.
func (c *Client) CreateFeedback(ctx context.Context, input FeedbackInput) (*Feedback, error) {
	var envelope struct {
		Feedback Feedback `json:"feedback"`
	}

	req := apiRequest{method: http.MethodPost, path: epFeedback, out: &envelope}
	if input.Attachment != nil {
		form, err := buildFeedbackForm(input)
		if err != nil {
			return nil, err
		}
		req.form = form
	} else {
		req.body = map[string]string{"subject": input.Subject, "message": input.Message}
	}

	if err := c.do(ctx, req); err != nil {
		return nil, err
	}
	return &envelope.Feedback, nil
}

// DeleteFeedback removes a feedback entry.
func (c *Client) DeleteFeedback(ctx context.Context, id string) error {
	return c.do(ctx, apiRequest{method: http.MethodDelete, path: epFeedbackItem(id)})
}

func buildFeedbackForm(input FeedbackInput) (*formPayload, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	if err := w.WriteField("subject", input.Subject); err != nil {
		return nil, fmt.Errorf("failed to build form: %w", err)
	}
	if err := w.WriteField("message", input.Message); err != nil {
		return nil, fmt.Errorf("failed to build form: %w", err)
	}

	name := input.AttachmentName
	if name == "" {
		name = "attachment"
	}
	part, err := w.CreateFormFile("attachment", name)
	if err != nil {
		return nil, fmt.Errorf("failed to build form: %w", err)
	}
	if _, err := io.Copy(part, input.Attachment); err != nil {
		return nil, fmt.Errorf("failed to read attachment: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to build form: %w", err)
	}

	return &formPayload{reader: &buf, contentType: w.FormDataContentType()}, nil
}
