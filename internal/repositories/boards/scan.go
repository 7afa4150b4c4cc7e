package boards

import (
	"context"
	"encoding/json"
	"sync"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/catan-odds/internal/entities/catan"
	"github.com/KirkDiggler/catan-odds/internal/errors"
	redisclient "github.com/KirkDiggler/catan-odds/internal/redis"
)

// ScanReport lists stored boards that can no longer be served
type ScanReport struct {
	Checked int
	Corrupt []CorruptBoard
}

// CorruptBoard is one unreadable or illegal board record
type CorruptBoard struct {
	Key    string
	Reason string
}

// FindCorrupt walks every board key and reports records that do not decode
// or whose layout is no longer a legal board.
func FindCorrupt(ctx context.Context, client redisclient.Client) (*ScanReport, error) {
	if client == nil {
		return nil, errors.InvalidArgument("client cannot be nil")
	}

	report := &ScanReport{}
	var mu sync.Mutex

	scan := func(ctx context.Context, node redis.UniversalClient) error {
		iter := node.Scan(ctx, 0, EntityType+":*", 0).Iterator()
		for iter.Next(ctx) {
			key := iter.Val()

			payload, err := node.Get(ctx, key).Result()
			if err == redis.Nil {
				continue // expired between SCAN and GET
			}
			if err != nil {
				return errors.Wrapf(err, "failed to read %s", key)
			}

			reason := checkPayload(payload)

			mu.Lock()
			report.Checked++
			if reason != "" {
				report.Corrupt = append(report.Corrupt, CorruptBoard{Key: key, Reason: reason})
			}
			mu.Unlock()
		}
		return iter.Err()
	}

	var err error
	if cluster, ok := client.(*redis.ClusterClient); ok {
		err = cluster.ForEachMaster(ctx, func(ctx context.Context, node *redis.Client) error {
			return scan(ctx, node)
		})
	} else {
		err = scan(ctx, client)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to scan boards")
	}

	return report, nil
}

// RemoveKeys deletes the given board keys and returns how many existed
func RemoveKeys(ctx context.Context, client redisclient.Client, keys []string) (int64, error) {
	var removed int64
	for _, key := range keys {
		// one key per DEL keeps cluster slots happy
		n, err := client.Del(ctx, key).Result()
		if err != nil {
			return removed, errors.Wrapf(err, "failed to delete %s", key)
		}
		removed += n
	}
	return removed, nil
}

func checkPayload(payload string) string {
	var data BoardData
	if err := json.Unmarshal([]byte(payload), &data); err != nil {
		return "invalid JSON"
	}
	if data.ID == "" {
		return "missing id"
	}
	if _, err := catan.NewBoard(data.Layout); err != nil {
		return errors.GetMessage(err)
	}
	return ""
}
