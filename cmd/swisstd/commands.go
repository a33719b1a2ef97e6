/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"github.com/mikeb26/swisstd/feed"
	"github.com/mikeb26/swisstd/internal"
	"github.com/mikeb26/swisstd/report"
	"github.com/mikeb26/swisstd/store"
	"github.com/mikeb26/swisstd/swiss"
)

// warmDelay spaces out fetches so origins are not hammered.
const warmDelay = 2 * time.Second

const (
	formatText = "text"
	formatHTML = "html"
	formatJSON = "json"
)

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

func openOutput(location string) io.WriteCloser {
	if location == "" || location == stdoutCLIName {
		return nopWriteCloser{os.Stdout}
	}
	return internal.NewLazyFile(location)
}

// render writes v in format; textFn selects which plain-text report is used.
func render(w io.Writer, format string, v *report.View,
	textFn func(*report.View) string) error {

	switch format {
	case formatText:
		_, err := io.WriteString(w, textFn(v))
		return err
	case formatHTML:
		return report.HTML(w, v)
	case formatJSON:
		return report.JSON(w, v)
	default:
		return fmt.Errorf("unknown format %q; want text, html or json", format)
	}
}

func writeReport(cCtx *cli.Context, v *report.View,
	textFn func(*report.View) string) error {

	out := openOutput(cCtx.String(outputFlag))
	if err := render(out, cCtx.String(formatFlag), v, textFn); err != nil {
		out.Close()
		return err
	}

	return out.Close()
}

func handlePair(cCtx *cli.Context) error {
	rt, err := setup(cCtx)
	if err != nil {
		return err
	}
	v, err := rt.buildView(cCtx.Context, true)
	if err != nil {
		return err
	}

	return writeReport(cCtx, v, report.Text)
}

func handleStandings(cCtx *cli.Context) error {
	rt, err := setup(cCtx)
	if err != nil {
		return err
	}
	f, err := feed.LoadAll(cCtx.Context, rt.client, rt.locations...)
	if err != nil {
		return err
	}
	reg, err := swiss.Rebuild(f.Roster, f.Records, rt.replayOptions()...)
	if err != nil {
		return err
	}
	title := rt.cfg.Title
	if title == "" {
		title = f.Title
	}

	return writeReport(cCtx, report.NewView(title, f.Date, reg, nil),
		report.StandingsText)
}

func handleMerge(cCtx *cli.Context) error {
	rt, err := setup(cCtx)
	if err != nil {
		return err
	}
	f, err := feed.LoadAll(cCtx.Context, rt.client, rt.locations...)
	if err != nil {
		return err
	}
	// refuse to emit a log that no longer replays
	if _, err := swiss.Rebuild(f.Roster, f.Records); err != nil {
		return err
	}

	out := openOutput(cCtx.String(outputFlag))
	if err := feed.Encode(out, f); err != nil {
		out.Close()
		return err
	}

	return out.Close()
}

type publishedObject struct {
	name        string
	contentType string
	body        []byte
}

func handlePublish(cCtx *cli.Context) error {
	rt, err := setup(cCtx)
	if err != nil {
		return err
	}
	if err := requireSetting(rt.cfg.Bucket, "report bucket",
		bucketFlag); err != nil {
		return err
	}
	v, err := rt.buildView(cCtx.Context, false)
	if err != nil {
		return err
	}

	var html, js bytes.Buffer
	if err := report.HTML(&html, v); err != nil {
		return err
	}
	if err := report.JSON(&js, v); err != nil {
		return err
	}
	objects := []publishedObject{
		{"index.html", "text/html; charset=utf-8", html.Bytes()},
		{"standings.txt", "text/plain; charset=utf-8", []byte(report.Text(v))},
		{"pairings.json", "application/json", js.Bytes()},
	}

	bucket := store.New(cCtx.Context, rt.cfg.Bucket, false, true)
	if err := bucket.Init(); err != nil {
		return err
	}
	urls, err := publishAll(cCtx.Context, bucket, rt.cfg.ReportKey, objects)
	if err != nil {
		return err
	}
	for _, u := range urls {
		fmt.Println(u)
	}

	return nil
}

type publisher interface {
	Publish(ctx context.Context, key string, contentType string,
		body []byte) (string, error)
}

// publishAll uploads objects concurrently and returns their URLs in order.
func publishAll(ctx context.Context, p publisher, keyFn func(string) string,
	objects []publishedObject) ([]string, error) {

	urls := make([]string, len(objects))
	g, gctx := errgroup.WithContext(ctx)
	for i, obj := range objects {
		g.Go(func() error {
			u, err := p.Publish(gctx, keyFn(obj.name), obj.contentType,
				obj.body)
			if err != nil {
				return err
			}
			urls[i] = u
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return urls, nil
}

func handleAnnounce(cCtx *cli.Context) error {
	rt, err := setup(cCtx)
	if err != nil {
		return err
	}
	if err := requireSetting(rt.cfg.DiscordWebhook, "discord webhook",
		webhookFlag); err != nil {
		return err
	}
	v, err := rt.buildView(cCtx.Context, true)
	if err != nil {
		return err
	}
	if err := report.Announce(cCtx.Context, rt.cfg.DiscordWebhook, v); err != nil {
		return err
	}
	log.Printf("swisstd.announce: posted round %v", v.RoundNumber())

	return nil
}

// handleWarm fetches every location once so later runs are served from the
// S3 http cache. Failures are logged and skipped.
func handleWarm(cCtx *cli.Context) error {
	rt, err := setup(cCtx)
	if err != nil {
		return err
	}
	if err := requireSetting(rt.cfg.CacheBucket, "cache bucket",
		cacheBucketFlag); err != nil {
		return err
	}

	for i, loc := range rt.locations {
		if i > 0 {
			time.Sleep(warmDelay)
		}
		if _, err := feed.Load(cCtx.Context, rt.client, loc); err != nil {
			log.Printf("swisstd.warm: skipping %v: %v", loc, err)
			continue
		}
		fmt.Printf("cached %v\n", loc)
	}

	return nil
}

func handleServe(cCtx *cli.Context) error {
	rt, err := setup(cCtx)
	if err != nil {
		return err
	}
	if rt.cfg.Seed == nil {
		// every request replays the log; a fixed seed keeps pairings stable
		seed := time.Now().UnixNano()
		rt.cfg.Seed = &seed
		log.Printf("swisstd.serve: shuffling with seed %v", seed)
	}

	httpSrv := &http.Server{
		Addr:              rt.cfg.Listen,
		Handler:           newServer(rt).routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cCtx.Context, os.Interrupt,
		syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("swisstd.serve: listening on %v", rt.cfg.Listen)
		err := httpSrv.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Printf("swisstd.serve: shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(),
			30*time.Second)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
