package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSweaterLine(t *testing.T) {
	f := newFixture(t)
	assert.Equal(t, "sweater: +0 (NO)  57 left to pick up", sweaterLine(f.sweater()))

	f.charge(t, f.yellow, 20)
	assert.Equal(t, "sweater: +20 (SEVERAL)  37 left to pick up", sweaterLine(f.sweater()))
}
