// Copyright 2026 The Roomctl Authors
// SPDX-License-Identifier: Apache-2.0

package messaging

import "github.com/ember-hs/roomctl/lib/ref"

// JoinResponse is the body of a successful room join. The homeserver
// echoes the canonical room ID, which can differ in case or server from
// what the caller supplied on a federated join.
type JoinResponse struct {
	RoomID ref.RoomID `json:"room_id"`
}

// WhoAmIResponse is the body of GET /_matrix/client/v3/account/whoami.
type WhoAmIResponse struct {
	UserID   ref.UserID `json:"user_id"`
	DeviceID string     `json:"device_id,omitempty"`
}

// JoinedRoomsResponse is the body of GET /_matrix/client/v3/joined_rooms.
type JoinedRoomsResponse struct {
	JoinedRooms []ref.RoomID `json:"joined_rooms"`
}

// ServerVersionsResponse is the body of GET /_matrix/client/versions,
// the unauthenticated endpoint used to probe homeserver reachability.
type ServerVersionsResponse struct {
	Versions         []string        `json:"versions"`
	UnstableFeatures map[string]bool `json:"unstable_features,omitempty"`
}
