package storage

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestManagerConcurrentBoot(t *testing.T) {
	Connect()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			Connect()
		}()
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = Use("local")
		}()
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = defaultD()
		}()
	}
	wg.Wait()

	require.NotNil(t, Use("local"))
}
