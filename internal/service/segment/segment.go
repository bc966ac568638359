// Package segment provides segment ID generation. Each scored utterance
// within an interaction gets a process-unique segment ID so downstream
// consumers can correlate reports with their source audio.
package segment

import (
	"fmt"
	"sync/atomic"
)

type Generator struct {
	counter uint64
}

func New() *Generator {
	return &Generator{}
}

func (g *Generator) Next(interactionId string) string {
	n := atomic.AddUint64(&g.counter, 1)
	return fmt.Sprintf("%s-seg-%d", interactionId, n)
}
