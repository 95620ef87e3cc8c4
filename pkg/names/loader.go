// Package names loads candidate name lists for batch scoring.
package names

import (
	"bufio"
	"context"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// MaxListBytes caps how much of a name list is read.
const MaxListBytes = 4 << 20

// ErrListTooLarge is returned when a name list exceeds MaxListBytes.
var ErrListTooLarge = errors.New("name list too large")

// FetchTimeout bounds a remote name list download.
const FetchTimeout = 30 * time.Second

// Load reads names from a file path or an http(s) URL.
// Names are one per line; blank lines and lines starting with # are skipped.
func Load(ctx context.Context, input string) (list []string, err error) {
	var content string

	parsedURL, urlErr := url.Parse(input)
	if urlErr == nil && (parsedURL.Scheme == "http" || parsedURL.Scheme == "https") {
		content, err = fetchFromURL(ctx, input)
		if err != nil {
			err = errors.Wrapf(err, "failed to fetch names from URL: %s", input)
			return list, err
		}
	} else {
		content, err = fetchFromFile(input)
		if err != nil {
			err = errors.Wrapf(err, "failed to load names from file: %s", input)
			return list, err
		}
	}

	list, err = Parse(strings.NewReader(content))
	if err != nil {
		return list, err
	}

	if len(list) == 0 {
		err = errors.Errorf("no names found in %s", input)
		return list, err
	}

	return list, err
}

// Parse reads one name per line.
func Parse(r io.Reader) (list []string, err error) {
	list = []string{}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		list = append(list, line)
	}

	err = scanner.Err()
	if err != nil {
		err = errors.Wrap(err, "failed to read name list")
		return list, err
	}

	return list, err
}

func fetchFromFile(path string) (content string, err error) {
	var f *os.File
	f, err = os.Open(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to open file: %s", path)
		return content, err
	}
	defer f.Close()

	content, err = readLimited(f)
	if err != nil {
		err = errors.Wrapf(err, "failed to read file: %s", path)
		return content, err
	}

	return content, err
}

func fetchFromURL(ctx context.Context, urlStr string) (content string, err error) {
	ctx, cancel := context.WithTimeout(ctx, FetchTimeout)
	defer cancel()

	var req *http.Request
	req, err = http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		err = errors.Wrap(err, "failed to create HTTP request")
		return content, err
	}

	req.Header.Set("User-Agent", "namescore/1.0")
	req.Header.Set("Accept", "text/plain")

	var resp *http.Response
	resp, err = http.DefaultClient.Do(req)
	if err != nil {
		err = errors.Wrap(err, "HTTP request failed")
		return content, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err = errors.Errorf("HTTP request failed with status: %d", resp.StatusCode)
		return content, err
	}

	content, err = readLimited(resp.Body)
	if err != nil {
		err = errors.Wrap(err, "failed to read response body")
		return content, err
	}

	return content, err
}

// readLimited reads all of r, failing rather than truncating past MaxListBytes.
func readLimited(r io.Reader) (content string, err error) {
	var data []byte
	data, err = io.ReadAll(io.LimitReader(r, MaxListBytes+1))
	if err != nil {
		return content, err
	}

	if len(data) > MaxListBytes {
		err = errors.Wrapf(ErrListTooLarge, "more than %d bytes", MaxListBytes)
		return content, err
	}

	content = string(data)
	return content, err
}
