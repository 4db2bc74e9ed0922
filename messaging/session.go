// Copyright 2026 The Roomctl Authors
// SPDX-License-Identifier: Apache-2.0

package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/ember-hs/roomctl/lib/ref"
	"github.com/ember-hs/roomctl/lib/secret"
)

// Session is an authenticated Matrix session. It wraps a Client with a
// bearer access token for making authenticated API calls.
//
// The access token is stored in a secret.Buffer (mmap-backed, locked
// against swap, excluded from core dumps). The Session owns the buffer;
// the caller must call Close when the Session is no longer needed.
type Session struct {
	client      *Client
	accessToken *secret.Buffer
}

// Close releases the access token memory (zeros, unlocks, unmaps).
// Idempotent — safe to call multiple times.
func (s *Session) Close() error {
	if s.accessToken != nil {
		return s.accessToken.Close()
	}
	return nil
}

// WhoAmI validates the access token and returns the user it belongs
// to. Useful for checking a token before a destructive operation.
func (s *Session) WhoAmI(ctx context.Context) (*WhoAmIResponse, error) {
	body, err := s.client.doRequest(ctx, http.MethodGet, "/_matrix/client/v3/account/whoami", s.accessToken, nil)
	if err != nil {
		return nil, fmt.Errorf("messaging: whoami failed: %w", err)
	}

	var response WhoAmIResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("messaging: failed to parse whoami response: %w", err)
	}
	return &response, nil
}

// JoinRoom joins a room by ID. via names the server through which a
// federated join should be routed (the join's server_name parameter);
// pass the zero ServerName for a purely local join. Returns the
// homeserver's join response with the canonical room ID.
func (s *Session) JoinRoom(ctx context.Context, roomID ref.RoomID, via ref.ServerName) (*JoinResponse, error) {
	path := fmt.Sprintf("/_matrix/client/v3/rooms/%s/join", url.PathEscape(roomID.String()))

	var query url.Values
	if !via.IsZero() {
		query = url.Values{"server_name": []string{via.String()}}
	}

	body, err := s.client.doRequest(ctx, http.MethodPost, path, s.accessToken, struct{}{}, query)
	if err != nil {
		return nil, fmt.Errorf("messaging: join room %s failed: %w", roomID, err)
	}

	var response JoinResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("messaging: failed to parse join response: %w", err)
	}

	s.client.logger.Info("joined matrix room", "room_id", response.RoomID)
	return &response, nil
}

// LeaveRoom leaves a room by ID.
func (s *Session) LeaveRoom(ctx context.Context, roomID ref.RoomID) error {
	path := fmt.Sprintf("/_matrix/client/v3/rooms/%s/leave", url.PathEscape(roomID.String()))
	if _, err := s.client.doRequest(ctx, http.MethodPost, path, s.accessToken, struct{}{}); err != nil {
		return fmt.Errorf("messaging: leave room %s failed: %w", roomID, err)
	}

	s.client.logger.Info("left matrix room", "room_id", roomID)
	return nil
}

// JoinedRooms returns the list of room IDs the token's user has joined.
// This is the server's view of membership — compare it against the
// homeserver's rooms table when diagnosing membership desynchronization.
func (s *Session) JoinedRooms(ctx context.Context) ([]ref.RoomID, error) {
	body, err := s.client.doRequest(ctx, http.MethodGet, "/_matrix/client/v3/joined_rooms", s.accessToken, nil)
	if err != nil {
		return nil, fmt.Errorf("messaging: joined rooms failed: %w", err)
	}

	var response JoinedRoomsResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("messaging: failed to parse joined rooms response: %w", err)
	}
	return response.JoinedRooms, nil
}
