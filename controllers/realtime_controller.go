package controllers

import (
	"net/http"

	"github.com/weijinqqq/smart-fitness-backend/middlewares"
	"github.com/weijinqqq/smart-fitness-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

type RealtimeController struct {
	hub *services.RealtimeHub
}

func NewRealtimeController(hub *services.RealtimeHub) *RealtimeController {
	return &RealtimeController{hub: hub}
}

// Connect upgrades the request and keeps the socket registered until the
// client goes away. The read loop only drains control frames; all traffic
// is server to client.
func (ctl *RealtimeController) Connect(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	client := &services.WSClient{UserID: middlewares.CurrentUserID(c), Conn: conn}
	ctl.hub.Register(client)
	defer ctl.hub.Unregister(client)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
