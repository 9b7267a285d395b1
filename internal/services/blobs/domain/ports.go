// Package domain defines the blob store contract shared by every service
package domain

import (
	"context"
	"encoding/json"
)

// Port is a get/set store of JSON documents addressed by fixed keys
// Get reports ok=false for a missing key without an error
type Port interface {
	Get(ctx context.Context, key string) (json.RawMessage, bool, error)
	Set(ctx context.Context, key string, value json.RawMessage) error
}

// Keys used by the services
const (
	KeyRecordingTime      = "recording_time"
	KeySubscriptionStatus = "subscription_status"
	KeyRecipients         = "recipients"
	KeyMessages           = "messages"
)

// Backend names accepted by BLOBS_BACKEND
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendPG     = "pg"
	BackendRedis  = "redis"
)
