package tui_test

import (
	"bytes"
	"testing"

	"github.com/aretw0/switchback/internal/presentation/tui"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	tui.PrintBanner(&buf, termenv.Ascii)

	out := buf.String()
	assert.Contains(t, out, "___")
	assert.NotContains(t, out, "\x1b[")
}
