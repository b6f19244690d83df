package ledger

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math/rand"

	log "github.com/sirupsen/logrus"
)

type simulated struct {
	rng *rand.Rand
}

// Mint fabricates a transaction id without touching a chain. The id is
// derived from the dataset id and a random nonce, so a seeded generator
// yields reproducible ids in tests.
func (s simulated) Mint(_ context.Context, req MintRequest) (string, error) {
	seed := fmt.Sprintf("%s_%d", req.DatasetID, s.rng.Int63())
	sum := sha256.Sum256([]byte(seed))
	txID := "0x" + hex.EncodeToString(sum[:])

	log.WithFields(log.Fields{
		"prefix":  logPrefix,
		"dataset": req.DatasetID,
		"tx":      txID,
	}).Info("simulated mint")

	return txID, nil
}

// NewSimulated - in-process minter for demos and tests
func NewSimulated(rng *rand.Rand) Minter {
	return &simulated{rng: rng}
}
