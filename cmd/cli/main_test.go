package main

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/yourorg/registrocl/internal/config"
)

func TestRunStopsOnClosedInput(t *testing.T) {
	testCases := map[string]string{
		"empty":               "",
		"invalid then closed": "9\n",
		"partial line":        "9",
		"exit option":         "3\n",
	}
	for name, input := range testCases {
		t.Run(name, func(t *testing.T) {
			done := make(chan struct{})
			go func() {
				run(strings.NewReader(input), config.Config{})
				close(done)
			}()
			select {
			case <-done:
			case <-time.After(2 * time.Second):
				require.FailNow(t, "run no terminó al cerrarse la entrada")
			}
		})
	}
}
