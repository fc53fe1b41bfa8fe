package handler

import (
	"net/http"

	userEntity "ComplyLink/internal/modules/user/domain/entity"
	userRepository "ComplyLink/internal/modules/user/domain/repository"
	"ComplyLink/pkg/util/myjwt"
	"ComplyLink/pkg/ws"
	"ComplyLink/pkg/zlog"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type WsHandler struct {
	hub      *ws.Hub
	userRepo userRepository.UserInfoRepository
}

func NewWsHandler(hub *ws.Hub, userRepo userRepository.UserInfoRepository) *WsHandler {
	return &WsHandler{hub: hub, userRepo: userRepo}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Connect 建立通知推送的 WebSocket 连接
// 浏览器原生 WebSocket 无法自定义 Header，token 走 URL 参数，
// 所以这个路由不挂 JWT 中间件，在这里手动校验
func (h *WsHandler) Connect(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	claims, err := myjwt.ParseToken(token)
	if err != nil || claims == nil || claims.Uuid == "" {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	briefs, err := h.userRepo.GetUserBriefByUuids([]string{claims.Uuid})
	if err != nil || len(briefs) == 0 || briefs[0].Status != userEntity.UserStatusNormal {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		zlog.Error(err.Error())
		return
	}

	client := ws.NewClient(claims.Uuid, conn)
	h.hub.Register(client)

	defer h.hub.Unregister(client)
	go client.WritePump()

	// 读循环只用于感知断连，通知通道是单向下行的
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
