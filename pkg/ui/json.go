package ui

import (
	"encoding/json"
	"io"

	"github.com/arthur-debert/npmstage/pkg/errors"
)

// jsonRenderer provides JSON output for machine consumption
type jsonRenderer struct {
	encoder *json.Encoder
}

func newJSONRenderer(w io.Writer) *jsonRenderer {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return &jsonRenderer{encoder: encoder}
}

func (r *jsonRenderer) RenderReport(rep *Report) error {
	return r.encoder.Encode(rep)
}

type jsonError struct {
	Error   string                 `json:"error"`
	Code    errors.ErrorCode       `json:"code"`
	Kind    errors.Kind            `json:"kind"`
	Details map[string]interface{} `json:"details,omitempty"`
}

func (r *jsonRenderer) RenderError(err error) error {
	return r.encoder.Encode(jsonError{
		Error:   err.Error(),
		Code:    errors.GetErrorCode(err),
		Kind:    errors.KindOf(err),
		Details: errors.GetErrorDetails(err),
	})
}

func (r *jsonRenderer) RenderMessage(msg string) error {
	return r.encoder.Encode(map[string]string{"message": msg})
}
