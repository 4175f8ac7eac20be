package setup

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jongio/bonsai-core/clusterurl"
	"github.com/jongio/bonsai-core/env"
)

// Capability names.
const (
	// CapabilityQueue is a Redis-backed indexing queue.
	CapabilityQueue = "queue"
	// CapabilityTrafficControl throttles bulk reindex writes through the queue backend.
	CapabilityTrafficControl = "traffic-control"
)

// ErrInvalidConcurrency indicates BULK_CONCURRENCY is not a positive integer.
var ErrInvalidConcurrency = errors.New("invalid bulk concurrency")

// Capability reports whether an optional integration can be used.
type Capability struct {
	Name    string `json:"name"`
	Present bool   `json:"present"`
	Detail  string `json:"detail,omitempty"`
}

// DetectCapabilities inspects src for the settings optional integrations need.
// Detection never fails; a missing or unusable setting yields Present=false
// with the reason in Detail.
func DetectCapabilities(src env.Lookup, concurrency int) []Capability {
	queue := detectQueue(src)

	traffic := Capability{Name: CapabilityTrafficControl}
	if queue.Present {
		traffic.Present = true
		traffic.Detail = fmt.Sprintf("write concurrency %d", concurrency)
	} else {
		traffic.Detail = "requires " + CapabilityQueue
	}

	return []Capability{queue, traffic}
}

func detectQueue(src env.Lookup) Capability {
	c := Capability{Name: CapabilityQueue}

	raw := strings.TrimSpace(env.Get(src, env.RedisURL))
	if raw == "" {
		c.Detail = env.RedisURL + " not set"
		return c
	}
	u, err := clusterurl.Parse(raw)
	if err != nil {
		c.Detail = fmt.Sprintf("%s unusable: %v", env.RedisURL, err)
		return c
	}
	if u.Scheme != "redis" && u.Scheme != "rediss" {
		c.Detail = fmt.Sprintf("%s has unsupported scheme %q", env.RedisURL, u.Scheme)
		return c
	}

	c.Present = true
	c.Detail = clusterurl.Redact(raw)
	return c
}

// BulkConcurrency reads BULK_CONCURRENCY from src. Unset yields def. A value
// that is not a positive integer yields def and ErrInvalidConcurrency.
func BulkConcurrency(src env.Lookup, def int) (int, error) {
	raw := strings.TrimSpace(env.Get(src, env.BulkConcurrency))
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return def, fmt.Errorf("%w: %q", ErrInvalidConcurrency, raw)
	}
	return n, nil
}
