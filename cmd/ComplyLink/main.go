package main

import (
	https_server "ComplyLink/api/http"
	"ComplyLink/internal/config"
	"ComplyLink/internal/initial"
	"ComplyLink/pkg/redis"
	"ComplyLink/pkg/zlog"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	// 1. 加载配置
	conf := config.GetConfig()
	host := conf.MainConfig.Host
	port := conf.MainConfig.Port

	zlog.Init(conf.LogConfig.LogPath)
	initial.InitRedis()

	// 2. 启动到期扫描任务
	if err := https_server.ScanJob.Start(); err != nil {
		zlog.Fatal("到期扫描任务启动失败: " + err.Error())
		return
	}

	// 3. 启动 HTTP 服务
	go func() {
		addr := fmt.Sprintf("%s:%d", host, port)
		zlog.Info(fmt.Sprintf("服务器正在启动，监听地址: %s", addr))
		// 目前使用 HTTP 启动。如果需要 HTTPS，请配置证书并使用 GE.RunTLS
		if err := https_server.GE.Run(addr); err != nil {
			zlog.Fatal("服务器启动失败: " + err.Error())
			return
		}
	}()

	// 4. 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	zlog.Info("正在关闭服务器...")
	https_server.ScanJob.Stop()
	if https_server.EventPublisher != nil {
		_ = https_server.EventPublisher.Close()
	}
	_ = redis.Close()

	zlog.Info("服务器已关闭")
}
