package components

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDebugLogKeepsLatestLines(t *testing.T) {
	var d DebugData
	assert.Empty(t, d.Recent())

	for i := 0; i < 9; i++ {
		d.Record(fmt.Sprint(i))
	}
	assert.Equal(t, []string{"3", "4", "5", "6", "7", "8"}, d.Recent())
}
