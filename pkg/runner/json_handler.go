package runner

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"os"
	"strconv"
	"strings"
)

// JSONHandler implements the IOHandler interface for structured JSON-Lines communication.
// Each prompt is one line; answers are read one per line, either a bare
// index or a JSON number/string.
type JSONHandler struct {
	Reader       *bufio.Reader
	Encoder      *json.Encoder
	MaxInputSize int
}

type jsonEvent struct {
	Type    string  `json:"type"`
	Prompt  *Prompt `json:"prompt,omitempty"`
	Message string  `json:"message,omitempty"`
}

// NewJSONHandler creates a handler for JSON IO.
func NewJSONHandler(r io.Reader, w io.Writer) *JSONHandler {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	return &JSONHandler{
		Reader:  bufio.NewReader(r),
		Encoder: json.NewEncoder(w),
	}
}

func (h *JSONHandler) Output(ctx context.Context, prompt Prompt) error {
	return h.Encoder.Encode(jsonEvent{Type: "prompt", Prompt: &prompt})
}

func (h *JSONHandler) SystemOutput(ctx context.Context, msg string) error {
	return h.Encoder.Encode(jsonEvent{Type: "system", Message: msg})
}

// Input reads one line. It does not observe ctx while blocked on the reader;
// cancellation is checked by the runner between turns.
func (h *JSONHandler) Input(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	text, err := h.Reader.ReadString('\n')
	if err != nil && (err != io.EOF || text == "") {
		return "", err
	}

	text, err = SanitizeInputWithLimit(strings.TrimSpace(text), h.MaxInputSize)
	if err != nil {
		return "", err
	}

	// Try to unwrap a JSON string or number
	var val any
	if err := json.Unmarshal([]byte(text), &val); err == nil {
		switch v := val.(type) {
		case string:
			return v, nil
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64), nil
		}
	}

	// Fallback: return raw text (e.g. if they just sent plain text)
	return text, nil
}
