package console

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = "Forecast 2024-06-01\n" +
	"\n= = = 🌦️ RAIN 🌦️ = = =\n" +
	"Rain Expected: 🟥 YES\n" +
	"- - - TOP 2 PEAK RAIN CHANCE HOURS - - -\n" +
	"\t17:00: 60% (1.5 mm)\n" +
	"Coverage: 🟨 MODERATE (CAUTION)\n"

func TestPrinter_NoColorWritesTextUnchanged(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, true)

	require.NoError(t, p.Print(sample))

	assert.Equal(t, sample+"\n", buf.String())
}

func TestPrinter_ColorsHeadersAndMarkers(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false)

	require.NoError(t, p.Print(sample))
	out := buf.String()

	assert.Contains(t, out, p.section.Sprint("= = = 🌦️ RAIN 🌦️ = = ="))
	assert.Contains(t, out, p.rule.Sprint("- - - TOP 2 PEAK RAIN CHANCE HOURS - - -"))
	assert.Contains(t, out, "Rain Expected: "+p.high.Sprint("🟥 YES")+"\n")
	assert.Contains(t, out, "Coverage: "+p.mid.Sprint("🟨 MODERATE (CAUTION)")+"\n")
	assert.Contains(t, out, "\t17:00: 60% (1.5 mm)\n")
	assert.Contains(t, out, "\x1b[")
}

func TestPrinter_PrintError(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, true)

	require.NoError(t, p.PrintError("2024-06-02", errors.New("malformed forecast at astro: missing")))

	assert.Equal(t, "2024-06-02: malformed forecast at astro: missing\n", buf.String())
}
