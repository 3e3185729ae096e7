package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"time"
)

type Item struct {
	ID          string  `db:"id" json:"id"`
	Name        string  `db:"name" json:"name"`
	Description *string `db:"description" json:"description"`
}

// NewItem builds an item with its identifier computed from the content and
// the current wall-clock time. The id is assigned here exactly once and is
// never recomputed on update.
func NewItem(name string, description *string) Item {
	return Item{
		ID:          GenerateItemID(name, description),
		Name:        name,
		Description: description,
	}
}

// GenerateItemID returns the hex SHA-256 digest of
// "{name}-{description}-{unix time with fractional seconds}". Mixing the
// timestamp into the digest means two calls with identical inputs yield
// different ids; collisions are left to hash improbability, nothing checks
// for them.
func GenerateItemID(name string, description *string) string {
	desc := ""
	if description != nil {
		desc = *description
	}

	now := float64(time.Now().UnixNano()) / float64(time.Second)
	raw := fmt.Sprintf("%s-%s-%s", name, desc, strconv.FormatFloat(now, 'f', -1, 64))

	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
