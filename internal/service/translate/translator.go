// Package translate converts answers into the submission's target language
// through the public Google translate endpoint.
package translate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	xlanguage "golang.org/x/text/language"
)

// MaxChunkRunes is the longest text sent in one request.
const MaxChunkRunes = 5000

var (
	ErrEmptyText       = errors.New("text is empty")
	ErrUnsupportedCode = errors.New("unsupported target language")
	ErrMalformedReply  = errors.New("malformed translation response")
)

// Error wraps a translation failure with its target code.
type Error struct {
	Target string
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("translate to %q: %v", e.Target, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Result is the outcome of one Translate call. When Err is set, Text holds
// the sentinel shown in place of the translation.
type Result struct {
	Text string
	Err  error
}

// Failed reports whether the result carries sentinel text.
func (r Result) Failed() bool {
	return r.Err != nil
}

// Options configures Service.
type Options struct {
	BaseURL string
	Timeout time.Duration
	Client  *http.Client
}

// Service calls the translate_a/single endpoint with automatic source detection.
type Service struct {
	baseURL string
	timeout time.Duration
	client  *http.Client
}

// NewService creates a translator.
func NewService(opts Options) *Service {
	client := opts.Client
	if client == nil {
		client = &http.Client{}
	}
	return &Service{
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		timeout: opts.Timeout,
		client:  client,
	}
}

// Translate converts text into targetCode. It never returns an error value
// separately; failures come back as a sentinel Result.
func (s *Service) Translate(ctx context.Context, text, targetCode string) Result {
	if strings.TrimSpace(text) == "" {
		return failed(targetCode, ErrEmptyText)
	}
	if _, err := xlanguage.Parse(targetCode); err != nil || strings.TrimSpace(targetCode) == "" {
		return failed(targetCode, ErrUnsupportedCode)
	}

	chunks := splitChunks(text, MaxChunkRunes)
	translated := make([]string, 0, len(chunks))
	for _, chunk := range chunks {
		out, err := s.translateChunk(ctx, chunk, targetCode)
		if err != nil {
			log.Printf("[translate] target=%s failed: %v", targetCode, err)
			return failed(targetCode, err)
		}
		translated = append(translated, out)
	}
	return Result{Text: strings.Join(translated, "")}
}

func failed(target string, err error) Result {
	return Result{
		Text: "Translation Error: " + err.Error(),
		Err:  &Error{Target: target, Err: err},
	}
}

func (s *Service) translateChunk(ctx context.Context, chunk, target string) (string, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	query := url.Values{}
	query.Set("client", "gtx")
	query.Set("sl", "auto")
	query.Set("tl", target)
	query.Set("dt", "t")

	form := url.Values{}
	form.Set("q", chunk)

	endpoint := s.baseURL + "/translate_a/single?" + query.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded;charset=UTF-8")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP %d: %s", resp.StatusCode, truncate(string(body), 200))
	}

	return decode(body)
}

// decode joins the translated segments of a [[["out","in",...],...],...] reply.
func decode(body []byte) (string, error) {
	if !gjson.ValidBytes(body) {
		return "", ErrMalformedReply
	}
	segments := gjson.GetBytes(body, "0")
	if !segments.IsArray() {
		return "", ErrMalformedReply
	}

	var builder strings.Builder
	for _, segment := range segments.Array() {
		builder.WriteString(segment.Get("0").String())
	}
	if builder.Len() == 0 {
		return "", ErrMalformedReply
	}
	return builder.String(), nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
