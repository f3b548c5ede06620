package gateway

import "github.com/DanielPopoola/bambora-gateway/internal/bambora"

// Response is the normalized outcome of every gateway operation.
type Response struct {
	Success  bool           `json:"success"`
	Message  string         `json:"message"`
	Raw      map[string]any `json:"raw"`
	Metadata Metadata       `json:"metadata"`
}

type Metadata struct {
	Authorization string `json:"authorization,omitempty"`
	ErrorCode     string `json:"error_code,omitempty"`
}

func (r *Response) Authorization() string {
	return r.Metadata.Authorization
}

func (r *Response) ErrorCode() string {
	return r.Metadata.ErrorCode
}

func normalize(result bambora.Result) *Response {
	switch result.Kind {
	case bambora.ResultSuccess:
		return &Response{
			Success: true,
			Message: result.Success.Message,
			Raw:     result.Raw,
			Metadata: Metadata{
				Authorization: result.Success.ID,
			},
		}
	case bambora.ResultError:
		return &Response{
			Success: false,
			Message: result.Error.Message,
			Raw:     result.Raw,
			Metadata: Metadata{
				ErrorCode: MapErrorCode(result.Error.Code),
			},
		}
	}
	return nil
}
