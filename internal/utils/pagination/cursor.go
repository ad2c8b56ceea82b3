package pagination

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
)

var ErrInvalidToken = errors.New("invalid pagination token")

// Cursor is the opaque pagination state we encode/decode.
// Offset indexes into the filtered result; Filter pins the token to the
// query it was issued for.
type Cursor struct {
	Offset int    `json:"offset"`
	Filter string `json:"filter,omitempty"`
}

// Encode converts a Cursor into a Base64 string.
func Encode(c Cursor) (string, error) {
	b, err := json.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("failed to marshal cursor: %w", err)
	}
	return base64.URLEncoding.EncodeToString(b), nil
}

// Decode parses a Base64 string into a Cursor.
// Empty token → empty cursor (first page).
func Decode(token string) (Cursor, error) {
	if token == "" {
		return Cursor{}, nil
	}

	b, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return Cursor{}, ErrInvalidToken
	}

	var c Cursor
	if err := json.Unmarshal(b, &c); err != nil || c.Offset < 0 {
		return Cursor{}, ErrInvalidToken
	}
	return c, nil
}

// Page slices items for the cursor and returns the token of the next page,
// or "" on the last page. A token issued for another filter is rejected.
func Page[T any](items []T, token, filter string, size int) ([]T, string, error) {
	cur, err := Decode(token)
	if err != nil {
		return nil, "", err
	}
	if token != "" && cur.Filter != filter {
		return nil, "", ErrInvalidToken
	}
	if cur.Offset >= len(items) {
		return []T{}, "", nil
	}

	end := cur.Offset + size
	if size <= 0 || end >= len(items) {
		return items[cur.Offset:], "", nil
	}

	next, err := Encode(Cursor{Offset: end, Filter: filter})
	if err != nil {
		return nil, "", err
	}
	return items[cur.Offset:end], next, nil
}
