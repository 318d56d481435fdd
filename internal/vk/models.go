package vk

import "encoding/json"

// apiResponse is the envelope every VK API method returns: exactly one of
// response or error is set.
type apiResponse struct {
	Response json.RawMessage `json:"response"`
	Error    *apiError       `json:"error"`
}

type apiError struct {
	Code    int    `json:"error_code"`
	Message string `json:"error_msg"`
}

// apiUser is one element of a users.get response.
type apiUser struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// apiWallPost is one item of a wall.get response, restricted to the
// authorship attributes the relay cares about.
type apiWallPost struct {
	ID        int64  `json:"id"`
	OwnerID   int64  `json:"owner_id"`
	FromID    int64  `json:"from_id"`
	CreatedBy int64  `json:"created_by"`
	SignerID  int64  `json:"signer_id"`
	PostType  string `json:"post_type"`
}

type wallGetResponse struct {
	Count int           `json:"count"`
	Items []apiWallPost `json:"items"`
}

// longPollServer is the groups.getLongPollServer response.
type longPollServer struct {
	Key    string `json:"key"`
	Server string `json:"server"`
	TS     string `json:"ts"`
}

// Update is one raw group event delivered by the Bots Long Poll server.
type Update struct {
	Type   string          `json:"type"`
	Object json.RawMessage `json:"object"`
}

// longPollResult is a single a_check poll response. Failed is non-zero when
// the server asks the client to resync (1: stale ts, 2/3: stale key/server).
type longPollResult struct {
	TS      string   `json:"ts"`
	Failed  int      `json:"failed"`
	Updates []Update `json:"updates"`
}
