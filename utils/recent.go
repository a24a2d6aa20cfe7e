package utils

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// RecordRecentTask pushes a task id onto the caller's recent-activity list,
// keeping the last 10 entries with a one hour TTL. This is a best-effort
// side channel: failures are logged and never propagated, so a down Redis
// cannot fail task creation. A nil client disables the channel entirely.
func RecordRecentTask(client *redis.Client, userID, taskID uint) {
	if client == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	key := fmt.Sprintf("recent_tasks:%d", userID)
	pipe := client.Pipeline()
	pipe.LPush(ctx, key, taskID)
	pipe.LTrim(ctx, key, 0, 9)
	pipe.Expire(ctx, key, time.Hour)

	if _, err := pipe.Exec(ctx); err != nil {
		log.Printf("redis error recording recent task %d for user %d: %v", taskID, userID, err)
	}
}
