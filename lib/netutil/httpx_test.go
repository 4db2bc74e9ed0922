// Copyright 2026 The Roomctl Authors
// SPDX-License-Identifier: Apache-2.0

package netutil

import (
	"strings"
	"testing"
)

func TestReadResponse(t *testing.T) {
	data, err := ReadResponse(strings.NewReader(`{"room_id":"!a:ember.local"}`))
	if err != nil {
		t.Fatalf("ReadResponse: %v", err)
	}
	if string(data) != `{"room_id":"!a:ember.local"}` {
		t.Errorf("unexpected body: %s", data)
	}
}

func TestReadResponseTruncatesAtLimit(t *testing.T) {
	huge := strings.NewReader(strings.Repeat("x", 1024))
	data, err := ReadResponse(huge)
	if err != nil {
		t.Fatalf("ReadResponse: %v", err)
	}
	if int64(len(data)) > MaxResponseSize {
		t.Errorf("read %d bytes, want at most %d", len(data), MaxResponseSize)
	}
}
