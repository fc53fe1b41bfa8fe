package initial

import (
	"context"
	"fmt"
	"time"

	"ComplyLink/internal/config"
	myredis "ComplyLink/pkg/redis"
	"ComplyLink/pkg/zlog"

	"github.com/redis/go-redis/v9"
)

// InitRedis 初始化 Redis 连接，失败不致命：
// 未读计数会退化为每次查库
func InitRedis() {
	conf := config.GetConfig()
	if conf.RedisConfig.Host == "" {
		zlog.Warn("Redis 未配置，跳过初始化")
		return
	}

	client := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", conf.RedisConfig.Host, conf.RedisConfig.Port),
		Password:     conf.RedisConfig.Password,
		DB:           conf.RedisConfig.DB,
		PoolSize:     conf.RedisConfig.PoolSize,
		MinIdleConns: conf.RedisConfig.MinIdleConns,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		zlog.Warn("Redis 连接失败: " + err.Error())
		return
	}

	myredis.SetClient(client)
	zlog.Info("Redis connected")
}
