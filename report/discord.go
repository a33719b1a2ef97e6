/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package report

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
)

var ErrBadWebhookURL = errors.New("malformed discord webhook url")

const webhookUsername = "swisstd"

// Discord builds a webhook message announcing the next round, with the
// standings in an embed.
func Discord(v *View) *discordgo.WebhookParams {
	embed := &discordgo.MessageEmbed{
		Title: v.Title,
		Description: fmt.Sprintf("```\n%s```",
			TruncateContent(StandingsText(v))),
	}
	if !v.Date.IsZero() {
		embed.Timestamp = v.Date.Format(time.RFC3339)
	}

	return &discordgo.WebhookParams{
		Username: webhookUsername,
		// Wrap output in code block for monospace formatting in Discord
		Content:         fmt.Sprintf("```\n%s```", TruncateContent(PairingsText(v))),
		Embeds:          []*discordgo.MessageEmbed{embed},
		AllowedMentions: &discordgo.MessageAllowedMentions{},
	}
}

// Announce posts Discord(v) to the webhook at webhookURL.
func Announce(ctx context.Context, webhookURL string, v *View) error {
	id, token, err := parseWebhookURL(webhookURL)
	if err != nil {
		return err
	}
	session, err := discordgo.New("")
	if err != nil {
		return fmt.Errorf("unable to initialize discord client: %w", err)
	}
	_, err = session.WebhookExecute(id, token, false, Discord(v),
		discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("unable to post to discord webhook %v: %w", id, err)
	}

	return nil
}

// parseWebhookURL extracts the id and token from
// https://discord.com/api/webhooks/<id>/<token>.
func parseWebhookURL(webhookURL string) (string, string, error) {
	u, err := url.Parse(webhookURL)
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrBadWebhookURL, err)
	}
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	for i, p := range parts {
		if p == "webhooks" && len(parts) == i+3 && parts[i+1] != "" &&
			parts[i+2] != "" {
			return parts[i+1], parts[i+2], nil
		}
	}

	return "", "", fmt.Errorf("%w: %q", ErrBadWebhookURL, webhookURL)
}

// TruncateContent keeps s within a Discord message body.
func TruncateContent(s string) string {
	const MsgLimit = 1988 // keep space for newlines and markdown
	runes := []rune(s)
	if len(runes) > MsgLimit {
		s = fmt.Sprintf("%v...", string(runes[:MsgLimit]))
	}
	return s
}
