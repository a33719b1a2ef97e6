/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gregjones/httpcache"
	"github.com/mikeb26/swisstd/store"
)

// NewCachedHttpClient returns an http.Client that caches responses in the
// given S3 bucket for maxAge regardless of the origin's cache headers, and
// that sends swisstd's User-Agent. When the bucket is unset or unusable it
// returns an uncached client that still sets the User-Agent.
func NewCachedHttpClient(ctx context.Context, bucket string,
	maxAge time.Duration) *http.Client {

	agent := &HeaderOverrideTransport{
		Request:   setUserAgent,
		wrappedRT: http.DefaultTransport,
	}
	if bucket == "" {
		return &http.Client{Transport: agent}
	}

	cache := store.New(ctx, bucket, true, true)
	if err := cache.Init(); err != nil {
		log.Printf("swisstd.httpcache: warning failed to init S3 cache: %v; falling back to uncached http",
			err)
		return &http.Client{Transport: agent}
	}

	hc := httpcache.NewTransport(cache)
	// origin responses for raw result logs usually forbid caching, so the
	// headers are rewritten before httpcache sees them
	agent.Response = func(resp *http.Response) error {
		resp.Header.Del("Pragma")
		resp.Header.Del("Expires")
		resp.Header.Del("Cache-Control")
		resp.Header.Set("Cache-Control",
			fmt.Sprintf("public, max-age=%d", int(maxAge/time.Second)))
		return nil
	}
	hc.Transport = agent

	return &http.Client{Transport: hc}
}

func setUserAgent(req *http.Request) {
	req.Header.Set("User-Agent", UserAgent)
}

type HeaderOverrideTransport struct {
	Request  func(req *http.Request)
	Response func(resp *http.Response) error

	wrappedRT http.RoundTripper
}

// RoundTrip applies Request and Response hooks around the underlying transport.
func (t *HeaderOverrideTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// clone so we don’t stomp on the caller’s original
	req2 := req.Clone(req.Context())
	if t.Request != nil {
		t.Request(req2)
	}

	resp, err := t.wrappedRT.RoundTrip(req2)
	if err != nil {
		return nil, err
	}

	if t.Response != nil {
		if err := t.Response(resp); err != nil {
			resp.Body.Close()
			return nil, err
		}
	}
	return resp, nil
}
