package irc

import (
	"bytes"
	"strings"
	"unicode/utf8"
)

// Chunk splits text into IRC-sized messages. Each line of text is sent on
// its own; lines longer than maxChunkSize are broken at the last space
// that fits, or hard-broken at a rune boundary when there is none.
func Chunk(text string, maxChunkSize int) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		if maxChunkSize <= 0 {
			out = append(out, line)
			continue
		}

		buffer := bytes.NewBufferString(line)
		for buffer.Len() > maxChunkSize {
			if chunk := extractBestSplitChunk(buffer, maxChunkSize); chunk != "" {
				out = append(out, chunk)
			}
		}
		if buffer.Len() > 0 {
			out = append(out, buffer.String())
		}
	}
	return out
}

func extractBestSplitChunk(buffer *bytes.Buffer, maxChunkSize int) string {
	data := buffer.Bytes()
	end := min(maxChunkSize, len(data))

	// Try to find a space within the allowed range to break cleanly
	if idx := bytes.LastIndexByte(data[:end], ' '); idx > 0 {
		chunk := string(data[:idx])
		buffer.Next(idx + 1) // Skip the space itself
		return chunk
	}

	// don't split a multi-byte rune
	for end > 0 && end < len(data) && !utf8.RuneStart(data[end]) {
		end--
	}
	if end == 0 {
		end = min(maxChunkSize, len(data))
	}

	chunk := string(data[:end])
	buffer.Next(end)
	return chunk
}
