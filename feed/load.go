/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package feed

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"golang.org/x/sync/errgroup"
)

var stdin io.Reader = os.Stdin

// Load reads a feed from "-" (stdin), a file path or an http(s) URL. HTML
// sources are parsed as roster pages and yield a feed with no records.
func Load(ctx context.Context, client *http.Client,
	location string) (*Feed, error) {

	rc, isHTML, err := open(ctx, client, location)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	if isHTML {
		names, err := ParseRosterHTML(rc)
		if err != nil {
			return nil, fmt.Errorf("%v: %w", location, err)
		}
		return &Feed{Roster: names}, nil
	}
	f, err := Decode(rc)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", location, err)
	}

	return f, nil
}

func open(ctx context.Context, client *http.Client,
	location string) (io.ReadCloser, bool, error) {

	if location == "-" {
		return io.NopCloser(stdin), false, nil
	}

	u, err := url.Parse(location)
	if err == nil && (u.Scheme == "http" || u.Scheme == "https") {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet,
			u.String(), nil)
		if err != nil {
			return nil, false, err
		}
		resp, err := client.Do(req)
		if err != nil {
			return nil, false, fmt.Errorf("unable to fetch %v: %w", location,
				err)
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, false, fmt.Errorf("unable to fetch %v: status %v",
				location, resp.Status)
		}
		mediaType, _, _ := mime.ParseMediaType(resp.Header.Get("Content-Type"))
		return resp.Body, mediaType == "text/html" || isHTMLPath(u.Path), nil
	}

	f, err := os.Open(location)
	if err != nil {
		return nil, false, err
	}

	return f, isHTMLPath(location), nil
}

func isHTMLPath(p string) bool {
	ext := strings.ToLower(path.Ext(p))
	return ext == ".html" || ext == ".htm"
}

// LoadAll loads every location concurrently. The first is the result log;
// the rest may only contribute roster names, which are appended when not
// already present.
func LoadAll(ctx context.Context, client *http.Client,
	locations ...string) (*Feed, error) {

	if len(locations) == 0 {
		return nil, fmt.Errorf("%w: no locations given", ErrNoRoster)
	}

	feeds := make([]*Feed, len(locations))
	g, gctx := errgroup.WithContext(ctx)
	for i, loc := range locations {
		g.Go(func() error {
			f, err := Load(gctx, client, loc)
			if err != nil {
				return err
			}
			feeds[i] = f
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	base := feeds[0]
	for i, f := range feeds[1:] {
		if len(f.Records) != 0 {
			return nil, fmt.Errorf("%v: %w", locations[i+1], ErrExtraResults)
		}
		base.MergeRoster(f.Roster)
	}

	return base, nil
}
