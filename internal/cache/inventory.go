package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	UserKeyPrefix    = "user:%d"
	ContentKeyPrefix = "content:%d"
	TopicsListKey    = "topics:list"
)

const (
	UserTTL    = 5 * time.Minute
	ContentTTL = 30 * time.Minute
	TopicsTTL  = 10 * time.Minute
)

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

func ContentKey(contentID uint) string {
	return fmt.Sprintf(ContentKeyPrefix, contentID)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}

func InvalidateContent(ctx context.Context, contentID uint) {
	Invalidate(ctx, ContentKey(contentID))
}
