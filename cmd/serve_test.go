package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	printBanner(&buf, "http://localhost:3000")
	out := buf.String()

	for _, line := range []string{
		"🚀 Starting REACT Check-In App...",
		"📱 Server running at http://localhost:3000",
		"🔑 Demo Credentials:",
		"Student ID: demo123",
		"Password: password",
		"🌐 Opening browser...",
		"Press Ctrl+C to stop the server",
	} {
		assert.Contains(t, out, line)
	}

	// Credentials are announced before the browser line.
	assert.Less(t,
		strings.Index(out, "Demo Credentials"),
		strings.Index(out, "Opening browser"),
	)
}
