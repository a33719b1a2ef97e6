/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

import "errors"

// Failures returned by the registry, ingestion and pairing. Callers match
// them with errors.Is; the wrapping error names the offending contestant or
// record.
var (
	ErrUnknownContestant   = errors.New("unknown contestant")
	ErrDuplicateContestant = errors.New("duplicate contestant")
	ErrAlreadyEnabled      = errors.New("contestant already enabled")
	ErrInvalidOutcome      = errors.New("invalid game outcome")
	ErrInvalidRecord       = errors.New("invalid record")
	ErrNoAvailableOpponent = errors.New("no available opponent")
	ErrEmptyRoster         = errors.New("no enabled contestants to pair")
)
