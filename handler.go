package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-lambda-go/events"
	"github.com/rs/zerolog"
)

var jsonHeader = map[string]string{
	"Content-Type": "application/json",
}

type optimizeResult struct {
	Parts        []int   `json:"parts"`
	Acceleration float64 `json:"acceleration"`
	Baseline     float64 `json:"baseline"`
	Evaluated    int     `json:"evaluated"`
	TimeMs       int64   `json:"timeMs"`
	Output       string  `json:"output"`
}

// maxParts caps the part count a request may carry. The search visits 2^n
// subsets, so anything larger would not finish within a Lambda timeout.
const maxParts = 24

// handler serves optimize requests behind a Lambda Function URL. The body is
// a problem in the JSON input format.
type handler struct {
	log zerolog.Logger
}

func (h *handler) serve(_ context.Context, event events.LambdaFunctionURLRequest) (events.LambdaFunctionURLResponse, error) {
	body := event.Body
	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(body)
		if err != nil {
			return errResp(400, "invalid base64 body")
		}
		body = string(decoded)
	}

	problem, err := ParseProblemJSON(body)
	if err != nil {
		return errResp(400, err.Error())
	}
	if len(problem.Parts) > maxParts {
		return errResp(400, fmt.Sprintf("too many parts: %d, limit is %d", len(problem.Parts), maxParts))
	}

	r := NewOptimizer(problem, h.log).Optimize()
	parts := r.Selection.Indices()
	if parts == nil {
		parts = []int{}
	}
	resp := optimizeResult{
		Parts:        parts,
		Acceleration: r.Acceleration,
		Baseline:     r.Baseline,
		Evaluated:    r.Evaluated,
		TimeMs:       r.Elapsed.Milliseconds(),
		Output:       FormatResult(r.Selection),
	}
	respJSON, err := json.Marshal(resp)
	if err != nil {
		// +Inf/NaN from a zero total mass cannot be encoded.
		return errResp(422, "result not representable: "+err.Error())
	}
	return events.LambdaFunctionURLResponse{StatusCode: 200, Headers: jsonHeader, Body: string(respJSON)}, nil
}

func errResp(code int, msg string) (events.LambdaFunctionURLResponse, error) {
	body, _ := json.Marshal(map[string]string{"error": msg})
	return events.LambdaFunctionURLResponse{StatusCode: code, Headers: jsonHeader, Body: string(body)}, nil
}
