package irc

import (
	"reflect"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestChunk_SingleLine(t *testing.T) {
	got := Chunk("Hello world", 400)
	if !reflect.DeepEqual(got, []string{"Hello world"}) {
		t.Errorf("expected one chunk, got %q", got)
	}
}

func TestChunk_MultiLine(t *testing.T) {
	got := Chunk("first\n\nsecond\r\nthird\n", 400)
	want := []string{"first", "second", "third"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Chunk() = %q, want %q", got, want)
	}
}

func TestChunk_MaxSize(t *testing.T) {
	maxSize := 20
	for _, chunk := range Chunk("This is a message that exceeds the max size", maxSize) {
		if len(chunk) > maxSize {
			t.Errorf("chunk %q size %d exceeds max %d", chunk, len(chunk), maxSize)
		}
	}
}

func TestChunk_SplitAtSpace(t *testing.T) {
	// "Hello there friend" = 18 chars, should split at space
	got := Chunk("Hello there friend", 15)
	want := []string{"Hello there", "friend"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Chunk() = %q, want %q", got, want)
	}
}

func TestChunk_NoSpaceHardBreak(t *testing.T) {
	got := Chunk("abcdefghijklmnopqrstuvwxyz", 10)
	want := []string{"abcdefghij", "klmnopqrst", "uvwxyz"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Chunk() = %q, want %q", got, want)
	}
}

func TestChunk_RuneBoundary(t *testing.T) {
	text := strings.Repeat("é", 10) // 2 bytes each
	for _, chunk := range Chunk(text, 5) {
		if !utf8.ValidString(chunk) {
			t.Errorf("chunk %q is not valid utf-8", chunk)
		}
		if len(chunk) > 5 {
			t.Errorf("chunk %q exceeds max size", chunk)
		}
	}
	if got := strings.Join(Chunk(text, 5), ""); got != text {
		t.Errorf("chunks do not reassemble: %q", got)
	}
}

func TestChunk_Unlimited(t *testing.T) {
	long := strings.Repeat("x", 1000)
	if got := Chunk(long, 0); len(got) != 1 || got[0] != long {
		t.Errorf("expected a single chunk when max is unset, got %d chunks", len(got))
	}
}

func TestChunk_Empty(t *testing.T) {
	if got := Chunk("", 10); len(got) != 0 {
		t.Errorf("expected no chunks, got %q", got)
	}
}
