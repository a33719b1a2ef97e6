/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"net/http"

	"github.com/urfave/cli/v2"

	"github.com/mikeb26/swisstd/config"
	"github.com/mikeb26/swisstd/feed"
	"github.com/mikeb26/swisstd/internal"
	"github.com/mikeb26/swisstd/report"
	"github.com/mikeb26/swisstd/swiss"
)

var errNoLocations = errors.New("no result log given; pass a location or set feeds in the config")

// runtime is the resolved configuration and http client shared by every
// command.
type runtime struct {
	cfg       *config.Config
	client    *http.Client
	locations []string
}

func setup(cCtx *cli.Context) (*runtime, error) {
	cfg, err := config.Load(cCtx.String(configFlag), cCtx.String(envFileFlag))
	if err != nil {
		return nil, err
	}
	applyFlags(cCtx, cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	locations := cCtx.Args().Slice()
	if len(locations) == 0 {
		locations = cfg.Feeds
	}
	if len(locations) == 0 {
		return nil, errNoLocations
	}

	return &runtime{
		cfg:       cfg,
		client:    internal.NewCachedHttpClient(cCtx.Context, cfg.CacheBucket, cfg.CacheTTL),
		locations: locations,
	}, nil
}

// applyFlags layers explicitly set command line flags over cfg.
func applyFlags(cCtx *cli.Context, cfg *config.Config) {
	if cCtx.IsSet(seedFlag) {
		seed := cCtx.Int64(seedFlag)
		cfg.Seed = &seed
	}
	strs := map[string]*string{
		titleFlag:       &cfg.Title,
		cacheBucketFlag: &cfg.CacheBucket,
		bucketFlag:      &cfg.Bucket,
		prefixFlag:      &cfg.ReportPrefix,
		webhookFlag:     &cfg.DiscordWebhook,
		listenFlag:      &cfg.Listen,
	}
	for name, dst := range strs {
		if cCtx.IsSet(name) {
			*dst = cCtx.String(name)
		}
	}
}

func (rt *runtime) replayOptions() []swiss.ReplayOption {
	if rt.cfg.Seed == nil {
		return nil
	}
	return []swiss.ReplayOption{
		swiss.WithRand(rand.New(rand.NewSource(*rt.cfg.Seed))),
	}
}

// buildView loads every location, replays the log and pairs the next round.
// When pairing is impossible and requireRound is false the view carries
// standings only.
func (rt *runtime) buildView(ctx context.Context,
	requireRound bool) (*report.View, error) {

	f, err := feed.LoadAll(ctx, rt.client, rt.locations...)
	if err != nil {
		return nil, err
	}
	title := rt.cfg.Title
	if title == "" {
		title = f.Title
	}

	tourney, err := swiss.Replay(f.Roster, f.Records, rt.replayOptions()...)
	if err == nil {
		return report.NewView(title, f.Date, tourney.Registry, tourney.Round), nil
	}
	if requireRound || !isPairingFailure(err) {
		return nil, err
	}

	log.Printf("swisstd.pair: warning %v; reporting standings only", err)
	reg, err := swiss.Rebuild(f.Roster, f.Records, rt.replayOptions()...)
	if err != nil {
		return nil, err
	}

	return report.NewView(title, f.Date, reg, nil), nil
}

func isPairingFailure(err error) bool {
	return errors.Is(err, swiss.ErrNoAvailableOpponent) ||
		errors.Is(err, swiss.ErrEmptyRoster)
}

func requireSetting(value string, what string, flag string) error {
	if value == "" {
		return fmt.Errorf("no %v configured; use --%v or the config file",
			what, flag)
	}
	return nil
}
