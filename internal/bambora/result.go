package bambora

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ResultKind tags which variant of a Result is populated.
type ResultKind int

const (
	ResultSuccess ResultKind = iota + 1
	ResultError
)

func (k ResultKind) String() string {
	switch k {
	case ResultSuccess:
		return "success"
	case ResultError:
		return "error"
	default:
		return "unknown"
	}
}

// Result is the outcome of a processed request. Exactly one of Success and
// Error is set, matching Kind. Raw always holds the full decoded payload.
type Result struct {
	Kind    ResultKind
	Success *SuccessResult
	Error   *ErrorResult
	Raw     map[string]any
}

func NewSuccessResult(s SuccessResult, raw map[string]any) Result {
	return Result{Kind: ResultSuccess, Success: &s, Raw: raw}
}

func NewErrorResult(e ErrorResult, raw map[string]any) Result {
	return Result{Kind: ResultError, Error: &e, Raw: raw}
}

// Message returns the human readable message of whichever variant is set.
func (r Result) Message() string {
	switch r.Kind {
	case ResultSuccess:
		return r.Success.Message
	case ResultError:
		return r.Error.Message
	}
	return ""
}

func decodeSuccess(body []byte) (Result, error) {
	var s SuccessResult
	if err := json.Unmarshal(body, &s); err != nil {
		return Result{}, fmt.Errorf("error decoding success response: %w", err)
	}
	raw, err := decodeRaw(body)
	if err != nil {
		return Result{}, err
	}
	return NewSuccessResult(s, raw), nil
}

// decodeError reports ok=false when body is not a processor error object.
func decodeError(body []byte) (Result, bool) {
	var env errorEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return Result{}, false
	}
	if env.Code == "" && env.Message == "" {
		return Result{}, false
	}
	raw, err := decodeRaw(body)
	if err != nil {
		return Result{}, false
	}
	return NewErrorResult(ErrorResult{
		Code:      string(env.Code),
		Category:  env.Category,
		Message:   env.Message,
		Reference: env.Reference,
		Details:   env.Details,
	}, raw), true
}

func decodeRaw(body []byte) (map[string]any, error) {
	raw := make(map[string]any)
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("error decoding raw response: %w", err)
	}
	return raw, nil
}

type jsonCode string

func (c *jsonCode) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*c = jsonCode(n.String())
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("code must be a number or string: %w", err)
	}
	*c = jsonCode(s)
	return nil
}
