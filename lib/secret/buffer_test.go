// Copyright 2026 The Roomctl Authors
// SPDX-License-Identifier: Apache-2.0

package secret

import (
	"bytes"
	"testing"
)

func TestNewAndClose(t *testing.T) {
	buffer, err := New(16)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if buffer.Len() != 16 {
		t.Errorf("Len = %d, want 16", buffer.Len())
	}
	for _, b := range buffer.Bytes() {
		if b != 0 {
			t.Fatal("new buffer is not zero-filled")
		}
	}

	if err := buffer.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	// Close is idempotent.
	if err := buffer.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
}

func TestNewInvalidSize(t *testing.T) {
	if _, err := New(0); err == nil {
		t.Error("expected error for size 0")
	}
	if _, err := New(-1); err == nil {
		t.Error("expected error for negative size")
	}
}

func TestNewFromBytesZerosSource(t *testing.T) {
	source := []byte("syt_operator_token")
	buffer, err := NewFromBytes(source)
	if err != nil {
		t.Fatalf("NewFromBytes: %v", err)
	}
	defer buffer.Close()

	if got := buffer.String(); got != "syt_operator_token" {
		t.Errorf("String = %q, want %q", got, "syt_operator_token")
	}
	if !bytes.Equal(source, make([]byte, len(source))) {
		t.Error("source was not zeroed")
	}
}

func TestNewFromBytesEmpty(t *testing.T) {
	if _, err := NewFromBytes(nil); err == nil {
		t.Error("expected error for empty source")
	}
}

func TestNewFromString(t *testing.T) {
	buffer, err := NewFromString("tok")
	if err != nil {
		t.Fatalf("NewFromString: %v", err)
	}
	defer buffer.Close()

	if got := buffer.String(); got != "tok" {
		t.Errorf("String = %q, want %q", got, "tok")
	}

	if _, err := NewFromString(""); err == nil {
		t.Error("expected error for empty string")
	}
}

func TestAccessAfterClosePanics(t *testing.T) {
	buffer, err := NewFromString("tok")
	if err != nil {
		t.Fatalf("NewFromString: %v", err)
	}
	buffer.Close()

	defer func() {
		if recover() == nil {
			t.Error("expected panic on Bytes after Close")
		}
	}()
	buffer.Bytes()
}
