package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

// MaxDocumentSize caps every import source.
const MaxDocumentSize = 1 << 20

const StdinSource = "-"

var ErrTooLarge = fmt.Errorf("import source exceeds %d bytes", MaxDocumentSize)

// Fetcher reads import documents from a local path, stdin ("-") or an
// http(s) URL.
type Fetcher struct {
	client *http.Client
	stdin  io.Reader
}

func New(client *http.Client, stdin io.Reader) *Fetcher {
	if client == nil {
		client = http.DefaultClient
	}
	if stdin == nil {
		stdin = os.Stdin
	}

	return &Fetcher{client: client, stdin: stdin}
}

// IsRemote reports whether source is fetched over HTTP.
func IsRemote(source string) bool {
	lower := strings.ToLower(strings.TrimSpace(source))
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

func (f *Fetcher) Fetch(ctx context.Context, source string) ([]byte, error) {
	source = strings.TrimSpace(source)

	switch {
	case source == "":
		return nil, errors.New("import source is empty")
	case source == StdinSource:
		return readLimited(f.stdin, "stdin")
	case IsRemote(source):
		return f.fetchRemote(ctx, source)
	default:
		return readFile(source)
	}
}

func readFile(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open import file: %w", err)
	}
	defer file.Close()

	return readLimited(file, "import file")
}

func (f *Fetcher) fetchRemote(ctx context.Context, url string) ([]byte, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	request.Header.Set("Accept", "application/json")
	request.Header.Set("User-Agent", "splitcalc/import")

	response, err := f.client.Do(request)
	if err != nil {
		return nil, fmt.Errorf("perform request: %w", err)
	}
	defer response.Body.Close()

	body, err := readLimited(response.Body, "response")
	if err != nil {
		return nil, err
	}
	if response.StatusCode < 200 || response.StatusCode > 299 {
		return nil, fmt.Errorf("status %d: %s", response.StatusCode, strings.TrimSpace(string(body)))
	}

	return body, nil
}

// readLimited reads one byte past the limit so an oversized source is
// reported instead of silently truncated.
func readLimited(r io.Reader, what string) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxDocumentSize+1))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", what, err)
	}
	if len(data) > MaxDocumentSize {
		return nil, ErrTooLarge
	}

	return data, nil
}
