package runner

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/aretw0/offhook/pkg/domain"
)

// TextHandler implements the standard text-based interface.
type TextHandler struct {
	Reader       *bufio.Reader
	Writer       io.Writer
	Renderer     ContentRenderer
	Formatter    StateFormatter
	MaxInputSize int

	inputChan chan inputResult
	startOnce sync.Once
}

type inputResult struct {
	text string
	err  error
}

// TextHandlerOption defines configuration for TextHandler.
type TextHandlerOption func(*TextHandler)

// WithTextHandlerRenderer configures the content renderer.
// When set, prompts are written as Markdown and passed through it.
func WithTextHandlerRenderer(renderer ContentRenderer) TextHandlerOption {
	return func(h *TextHandler) {
		h.Renderer = renderer
	}
}

// WithTextHandlerFormatter configures how state labels are displayed.
func WithTextHandlerFormatter(f StateFormatter) TextHandlerOption {
	return func(h *TextHandler) {
		h.Formatter = f
	}
}

// WithTextHandlerMaxInputSize overrides the input size limit.
func WithTextHandlerMaxInputSize(n int) TextHandlerOption {
	return func(h *TextHandler) {
		h.MaxInputSize = n
	}
}

// NewTextHandler creates a handler for standard text IO.
func NewTextHandler(r io.Reader, w io.Writer, opts ...TextHandlerOption) *TextHandler {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	h := &TextHandler{
		Reader: bufio.NewReader(r),
		Writer: w,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *TextHandler) initPump() {
	h.startOnce.Do(func() {
		h.inputChan = make(chan inputResult)
		go h.pump()
	})
}

func (h *TextHandler) pump() {
	for {
		text, err := h.Reader.ReadString('\n')

		// If we got text (even with EOF), send it
		if text != "" {
			h.inputChan <- inputResult{text: text}
		}

		if err != nil {
			if err != io.EOF {
				h.inputChan <- inputResult{err: err}
			}
			close(h.inputChan)
			return
		}
	}
}

func (h *TextHandler) Output(ctx context.Context, prompt Prompt) error {
	if h.Renderer != nil {
		rendered, err := h.Renderer(h.markdown(prompt))
		if err == nil {
			_, err = fmt.Fprintln(h.Writer, strings.TrimRight(rendered, "\n"))
			return err
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", MsgCurrentState, h.label(prompt.State))
	b.WriteString(MsgSelectTrigger + "\n")
	for i, rule := range prompt.Options {
		fmt.Fprintf(&b, "%d. %s\n", i, rule.Trigger)
	}
	_, err := io.WriteString(h.Writer, b.String())
	return err
}

func (h *TextHandler) markdown(prompt Prompt) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s **%s**\n\n", MsgCurrentState, prompt.State)
	b.WriteString(MsgSelectTrigger + "\n\n")
	for i, rule := range prompt.Options {
		fmt.Fprintf(&b, "- `%d` %s\n", i, rule.Trigger)
	}
	return b.String()
}

func (h *TextHandler) label(s domain.State) string {
	if h.Formatter != nil {
		return h.Formatter(s)
	}
	return s.String()
}

func (h *TextHandler) Input(ctx context.Context) (string, error) {
	// Ensure the pump is running
	h.initPump()

	for {
		// Only show prompt if context is not yet done
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
			fmt.Fprint(h.Writer, "> ")
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case res, ok := <-h.inputChan:
			if !ok {
				return "", io.EOF
			}
			if res.err != nil {
				return "", res.err
			}
			text := strings.TrimSpace(res.text)

			// Sanitize Input (Limit + Control Chars)
			clean, err := SanitizeInputWithLimit(text, h.MaxInputSize)
			if err != nil {
				fmt.Fprintf(h.Writer, "Error: %v. Please try again.\n", err)
				continue
			}
			return clean, nil
		}
	}
}

func (h *TextHandler) SystemOutput(ctx context.Context, msg string) error {
	_, err := fmt.Fprintln(h.Writer, msg)
	return err
}
