package model

import "encoding/json"

// PassportScore is the result of one Gitcoin Passport scorer query.
// It is never persisted; StampScores is an opaque passthrough for display.
type PassportScore struct {
	Address            string
	Score              float64
	PassingScore       bool
	Threshold          string
	LastScoreTimestamp string
	StampScores        json.RawMessage
}
