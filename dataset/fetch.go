package dataset

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/mmuldo/hexref/logging"
)

// DefaultSource is the published colour list.
const DefaultSource = "https://gist.githubusercontent.com/Lenochxd/12a1927943a2ce151560e1b9585d4bfa/raw/41d5a0dc9336827cefb217c1728f0e9415b1c7b9/colors_db.json"

// IsURL reports whether source is fetched over HTTP rather than read from
// disk.
func IsURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// Fetch reads the JSON array at source, an http(s) URL or a file path.
// Entries with a malformed hex code are dropped.
func Fetch(ctx context.Context, client *http.Client, source string) ([]Color, error) {
	var (
		r   io.ReadCloser
		err error
	)
	if IsURL(source) {
		r, err = get(ctx, client, source)
	} else {
		r, err = os.Open(source)
	}
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var raw []Color
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode %s: %w", source, err)
	}

	colors := raw[:0]
	for _, c := range raw {
		rgb, err := c.RGB()
		if err != nil {
			logger().Warn("skipping entry", "name", c.Name, "err", err)
			continue
		}
		c.Hex = rgb.Hex()
		colors = append(colors, c)
	}
	logger().Debug("fetched colours", "source", source, "count", len(colors))
	return colors, nil
}

func get(ctx context.Context, client *http.Client, url string) (io.ReadCloser, error) {
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("fetch %s: %s", url, resp.Status)
	}
	return resp.Body, nil
}

func logger() *slog.Logger {
	return logging.Logger().With("pkg", "dataset")
}
