// Copyright 2026 The Roomctl Authors
// SPDX-License-Identifier: Apache-2.0

package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ember-hs/roomctl/lib/ref"
)

// testSession creates a Session against a fake homeserver.
func testSession(t *testing.T, handler http.HandlerFunc) *Session {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(ClientConfig{HomeserverURL: server.URL})
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}

	session, err := client.SessionFromToken(testBuffer(t, "syt_operator"))
	if err != nil {
		t.Fatalf("SessionFromToken failed: %v", err)
	}
	// The token buffer is closed by testBuffer's cleanup; closing the
	// session again is a no-op because Close is idempotent.
	return session
}

func mustRoomID(t *testing.T, raw string) ref.RoomID {
	t.Helper()
	roomID, err := ref.ParseRoomID(raw)
	if err != nil {
		t.Fatalf("ParseRoomID(%q): %v", raw, err)
	}
	return roomID
}

func TestJoinRoom(t *testing.T) {
	t.Run("local join", func(t *testing.T) {
		session := testSession(t, func(writer http.ResponseWriter, request *http.Request) {
			if request.Method != http.MethodPost {
				t.Errorf("method = %s, want POST", request.Method)
			}
			if request.URL.Path != "/_matrix/client/v3/rooms/!room:ember.local/join" {
				t.Errorf("unexpected path: %s", request.URL.Path)
			}
			if request.URL.Query().Has("server_name") {
				t.Error("local join must not carry a server_name parameter")
			}
			if got := request.Header.Get("Authorization"); got != "Bearer syt_operator" {
				t.Errorf("Authorization = %q", got)
			}
			if got := request.Header.Get("Content-Type"); got != "application/json" {
				t.Errorf("Content-Type = %q", got)
			}
			body, _ := io.ReadAll(request.Body)
			if string(body) != "{}" {
				t.Errorf("body = %q, want empty JSON object", body)
			}

			writer.Header().Set("Content-Type", "application/json")
			json.NewEncoder(writer).Encode(map[string]string{"room_id": "!room:ember.local"})
		})

		response, err := session.JoinRoom(context.Background(), mustRoomID(t, "!room:ember.local"), ref.ServerName{})
		if err != nil {
			t.Fatalf("JoinRoom failed: %v", err)
		}
		if response.RoomID.String() != "!room:ember.local" {
			t.Errorf("room_id = %s", response.RoomID)
		}
	})

	t.Run("federated join carries server_name", func(t *testing.T) {
		session := testSession(t, func(writer http.ResponseWriter, request *http.Request) {
			if got := request.URL.Query().Get("server_name"); got != "other.example.com" {
				t.Errorf("server_name = %q, want %q", got, "other.example.com")
			}
			writer.Header().Set("Content-Type", "application/json")
			json.NewEncoder(writer).Encode(map[string]string{"room_id": "!room:other.example.com"})
		})

		_, err := session.JoinRoom(context.Background(),
			mustRoomID(t, "!room:other.example.com"),
			ref.MustParseServerName("other.example.com"))
		if err != nil {
			t.Fatalf("JoinRoom failed: %v", err)
		}
	})

	t.Run("forbidden", func(t *testing.T) {
		session := testSession(t, func(writer http.ResponseWriter, _ *http.Request) {
			writer.Header().Set("Content-Type", "application/json")
			writer.WriteHeader(http.StatusForbidden)
			json.NewEncoder(writer).Encode(MatrixError{
				Code:    ErrCodeForbidden,
				Message: "You are not invited to this room.",
			})
		})

		_, err := session.JoinRoom(context.Background(), mustRoomID(t, "!room:ember.local"), ref.ServerName{})
		if err == nil {
			t.Fatal("expected error for forbidden join")
		}
		var matrixErr *MatrixError
		if !errors.As(err, &matrixErr) {
			t.Fatalf("expected *MatrixError, got %T: %v", err, err)
		}
		if matrixErr.StatusCode != http.StatusForbidden {
			t.Errorf("StatusCode = %d, want 403", matrixErr.StatusCode)
		}
		if matrixErr.Message != "You are not invited to this room." {
			t.Errorf("Message = %q", matrixErr.Message)
		}
	})

	t.Run("non-JSON error body fails loud", func(t *testing.T) {
		session := testSession(t, func(writer http.ResponseWriter, _ *http.Request) {
			writer.WriteHeader(http.StatusBadGateway)
			writer.Write([]byte("upstream exploded"))
		})

		_, err := session.JoinRoom(context.Background(), mustRoomID(t, "!room:ember.local"), ref.ServerName{})
		if err == nil {
			t.Fatal("expected error for 502 response")
		}
		if IsMatrixError(err, ErrCodeUnknown) {
			t.Error("non-JSON body must not decode into a MatrixError")
		}
	})
}

func TestLeaveRoom(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var gotPath string
		session := testSession(t, func(writer http.ResponseWriter, request *http.Request) {
			gotPath = request.URL.Path
			if request.Method != http.MethodPost {
				t.Errorf("method = %s, want POST", request.Method)
			}
			body, _ := io.ReadAll(request.Body)
			if string(body) != "{}" {
				t.Errorf("body = %q, want empty JSON object", body)
			}
			writer.Header().Set("Content-Type", "application/json")
			writer.Write([]byte("{}"))
		})

		err := session.LeaveRoom(context.Background(), mustRoomID(t, "!room:ember.local"))
		if err != nil {
			t.Fatalf("LeaveRoom failed: %v", err)
		}
		if gotPath != "/_matrix/client/v3/rooms/!room:ember.local/leave" {
			t.Errorf("unexpected path: %s", gotPath)
		}
	})

	t.Run("forbidden surfaces status code", func(t *testing.T) {
		session := testSession(t, func(writer http.ResponseWriter, _ *http.Request) {
			writer.Header().Set("Content-Type", "application/json")
			writer.WriteHeader(http.StatusForbidden)
			json.NewEncoder(writer).Encode(MatrixError{
				Code:    ErrCodeForbidden,
				Message: "user is not in the room",
			})
		})

		err := session.LeaveRoom(context.Background(), mustRoomID(t, "!room:ember.local"))
		if err == nil {
			t.Fatal("expected error")
		}
		if got := StatusOf(err); got != http.StatusForbidden {
			t.Errorf("StatusOf = %d, want 403", got)
		}
	})
}

func TestWhoAmI(t *testing.T) {
	session := testSession(t, func(writer http.ResponseWriter, request *http.Request) {
		if request.URL.Path != "/_matrix/client/v3/account/whoami" {
			t.Errorf("unexpected path: %s", request.URL.Path)
		}
		writer.Header().Set("Content-Type", "application/json")
		json.NewEncoder(writer).Encode(map[string]string{"user_id": "@operator:ember.local"})
	})

	response, err := session.WhoAmI(context.Background())
	if err != nil {
		t.Fatalf("WhoAmI failed: %v", err)
	}
	if response.UserID.String() != "@operator:ember.local" {
		t.Errorf("user_id = %s", response.UserID)
	}
}

func TestJoinedRooms(t *testing.T) {
	session := testSession(t, func(writer http.ResponseWriter, request *http.Request) {
		if request.URL.Path != "/_matrix/client/v3/joined_rooms" {
			t.Errorf("unexpected path: %s", request.URL.Path)
		}
		writer.Header().Set("Content-Type", "application/json")
		json.NewEncoder(writer).Encode(map[string]any{
			"joined_rooms": []string{"!a:ember.local", "!b:ember.local"},
		})
	})

	rooms, err := session.JoinedRooms(context.Background())
	if err != nil {
		t.Fatalf("JoinedRooms failed: %v", err)
	}
	if len(rooms) != 2 || rooms[0].String() != "!a:ember.local" || rooms[1].String() != "!b:ember.local" {
		t.Errorf("unexpected rooms: %v", rooms)
	}
}
