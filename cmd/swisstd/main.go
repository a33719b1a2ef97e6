/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	_ "embed"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/mikeb26/swisstd/config"
	"github.com/mikeb26/swisstd/internal"
)

//go:embed help.txt
var helpText string

const (
	configFlag      = "config"
	envFileFlag     = "env-file"
	seedFlag        = "seed"
	titleFlag       = "title"
	cacheBucketFlag = "cache-bucket"
	formatFlag      = "format"
	outputFlag      = "output"
	bucketFlag      = "bucket"
	prefixFlag      = "prefix"
	webhookFlag     = "webhook"
	listenFlag      = "listen"
	stdoutCLIName   = "-"
)

func init() {
	log.SetFlags(log.Flags() &^ (log.Ldate | log.Ltime))
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatalf("swisstd: %v", err)
	}
}

func formatFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    formatFlag,
			Aliases: []string{"f"},
			Usage:   "Output format: text, html or json",
			Value:   formatText,
		},
	}
}

func outputFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    outputFlag,
			Aliases: []string{"o"},
			Usage:   "Where to write the report; a file path or \"-\" for stdout",
			Value:   stdoutCLIName,
		},
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:        "swisstd",
		Usage:       "Pair the next round of a Swiss-system tournament",
		UsageText:   "swisstd [global options] command [options] [location...]",
		Description: helpText,
		Version:     internal.Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    configFlag,
				Aliases: []string{"c"},
				Usage:   "YAML configuration file",
			},
			&cli.StringFlag{
				Name:  envFileFlag,
				Usage: "dotenv file loaded into the environment when present",
				Value: config.DefaultEnvFile,
			},
			&cli.Int64Flag{
				Name:  seedFlag,
				Usage: "Seed for the initial roster shuffle; makes pairings reproducible",
			},
			&cli.StringFlag{
				Name:  titleFlag,
				Usage: "Report title; overrides the log's #event line",
			},
			&cli.StringFlag{
				Name:  cacheBucketFlag,
				Usage: "S3 bucket used to cache fetched result logs",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "pair",
				Usage:     "Replay the log and print the next round",
				ArgsUsage: "[location...]",
				Flags:     append(formatFlags(), outputFlags()...),
				Action:    handlePair,
			},
			{
				Name:      "standings",
				Usage:     "Replay the log and print standings only",
				ArgsUsage: "[location...]",
				Flags:     append(formatFlags(), outputFlags()...),
				Action:    handleStandings,
			},
			{
				Name:      "merge",
				Usage:     "Merge roster pages into the log and print it in canonical form",
				ArgsUsage: "log [roster-page...]",
				Flags:     outputFlags(),
				Action:    handleMerge,
			},
			{
				Name:      "publish",
				Usage:     "Upload HTML, text and JSON reports to S3",
				ArgsUsage: "[location...]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  bucketFlag,
						Usage: "S3 bucket receiving the reports",
					},
					&cli.StringFlag{
						Name:  prefixFlag,
						Usage: "Object key prefix for the reports",
					},
				},
				Action: handlePublish,
			},
			{
				Name:      "announce",
				Usage:     "Post the next round to a Discord webhook",
				ArgsUsage: "[location...]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  webhookFlag,
						Usage: "Discord webhook URL",
					},
				},
				Action: handleAnnounce,
			},
			{
				Name:      "warm",
				Usage:     "Fetch every location once to fill the S3 http cache",
				ArgsUsage: "[location...]",
				Action:    handleWarm,
			},
			{
				Name:      "serve",
				Usage:     "Serve live reports over HTTP",
				ArgsUsage: "[location...]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  listenFlag,
						Usage: "Address to listen on",
					},
				},
				Action: handleServe,
			},
		},
	}
}
