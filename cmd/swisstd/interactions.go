/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/bwmarrin/discordgo"

	"github.com/mikeb26/swisstd/report"
)

const (
	swissCmd          = "swiss"
	pairingsSubCmd    = "pairings"
	standingsSubCmd   = "standings"
	maxInteractionLen = 1 << 20
)

// handleInteraction answers Discord's interaction webhook for the /swiss
// slash command. Requests must carry a valid ed25519 signature.
func (s *server) handleInteraction(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxInteractionLen)
	if !discordgo.VerifyInteraction(r, s.publicKey) {
		log.Printf("swisstd.int: failed to verify signature")
		http.Error(w, "invalid request signature", http.StatusUnauthorized)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Printf("swisstd.int: failed to read body: %v", err)
		http.Error(w, "unable to read request", http.StatusBadRequest)
		return
	}
	var inter discordgo.Interaction
	if err := json.Unmarshal(body, &inter); err != nil {
		log.Printf("swisstd.int: failed to unmarshal interaction: %v", err)
		http.Error(w, "malformed interaction", http.StatusBadRequest)
		return
	}

	resp := &discordgo.InteractionResponse{}
	switch inter.Type {
	case discordgo.InteractionPing:
		resp.Type = discordgo.InteractionResponsePong
	case discordgo.InteractionApplicationCommand:
		resp = s.swissCmdHandler(r, &inter)
	default:
		log.Printf("swisstd.int: unimplemented interaction type %v", inter.Type)
		w.WriteHeader(http.StatusNotImplemented)
		return
	}

	rawResp, err := json.Marshal(resp)
	if err != nil {
		log.Printf("swisstd.int: failed to marshal resp: err:%v", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(rawResp); err != nil {
		log.Printf("swisstd.int: failed to write resp: err:%v", err)
	}
}

func (s *server) swissCmdHandler(r *http.Request,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	resp := &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		},
	}

	data := inter.ApplicationCommandData()
	if data.Name != swissCmd || len(data.Options) == 0 {
		resp.Data.Content = fmt.Sprintf("unknown command '%v'", data.Name)
		return resp
	}

	var textFn func(*report.View) string
	switch sub := data.Options[0].Name; sub {
	case pairingsSubCmd:
		textFn = report.PairingsText
	case standingsSubCmd:
		textFn = report.StandingsText
	default:
		resp.Data.Content = fmt.Sprintf("unknown subcommand '%v'", sub)
		return resp
	}

	v, err := s.rt.buildView(r.Context(), false)
	if err != nil {
		resp.Data.Content = fmt.Sprintf("Error replaying results: %v", err)
		log.Printf("swisstd.int: %v", resp.Data.Content)
		return resp
	}
	// Wrap output in code block for monospace formatting in Discord
	resp.Data.Content = fmt.Sprintf("```\n%s```",
		report.TruncateContent(textFn(v)))

	return resp
}
