package utils

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLockedRandSameSequenceAsPlainRand(t *testing.T) {
	locked := NewLockedRand(42)
	plain := rand.New(rand.NewSource(42))

	for i := 0; i < 100; i++ {
		assert.Equal(t, plain.Int63(), locked.Int63())
	}
}

func TestLockedRandConcurrentUse(t *testing.T) {
	rng := NewLockedRand(1)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				v := rng.Intn(100)
				assert.GreaterOrEqual(t, v, 0)
				assert.Less(t, v, 100)
			}
		}()
	}
	wg.Wait()
}
