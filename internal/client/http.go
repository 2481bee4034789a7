package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"time"

	pkgerrors "github.com/pkg/errors"
	"go.uber.org/zap"

	api "github.com/fieldops/fieldforms/api/v1alpha1"
)

var _ Submitter = (*HTTPSubmitter)(nil)

type HTTPSubmitter struct {
	baseURL string
	client  *http.Client
	log     *zap.SugaredLogger
}

func NewHTTPSubmitter(baseURL string, timeout time.Duration) *HTTPSubmitter {
	return &HTTPSubmitter{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		log:     zap.S().Named("http_submitter"),
	}
}

func (s *HTTPSubmitter) Submit(ctx context.Context, data api.FormData) (*api.SubmitResult, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "encoding submit payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/forms/submit", bytes.NewReader(payload))
	if err != nil {
		return nil, pkgerrors.Wrap(err, "building submit request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		s.log.Warnw("submit request failed", "error", err)
		return &api.SubmitResult{Success: false, Message: classify(err)}, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		s.log.Warnw("submit rejected", "status", resp.StatusCode)
		return &api.SubmitResult{Success: false, Message: msgServer}, nil
	}

	var result api.SubmitResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return &api.SubmitResult{Success: false, Message: msgServer}, nil
	}
	if result.Message == "" {
		result.Message = msgSuccess
	}
	return &result, nil
}

// classify maps transport failures onto the two user-facing messages.
func classify(err error) string {
	if errors.Is(err, context.DeadlineExceeded) {
		return msgTimeout
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return msgTimeout
	}
	return msgNetwork
}
