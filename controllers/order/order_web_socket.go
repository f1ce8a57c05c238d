package orderControllers

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/burnernzetohost/dariza-fabrics-sub000/models"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

var (
	wsMu      sync.Mutex
	wsClients = make(map[*websocket.Conn]bool)
)

// OrderWebSocketHandler streams newly created orders to connected admin
// dashboards.
func OrderWebSocketHandler(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	wsMu.Lock()
	wsClients[conn] = true
	wsMu.Unlock()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			wsMu.Lock()
			delete(wsClients, conn)
			wsMu.Unlock()
			break
		}
	}
}

// BroadcastNewOrder pushes a freshly persisted order to every connected
// dashboard client.
func BroadcastNewOrder(order models.Order) {
	data, err := json.Marshal(order)
	if err != nil {
		return
	}

	wsMu.Lock()
	defer wsMu.Unlock()
	for client := range wsClients {
		client.WriteMessage(websocket.TextMessage, data)
	}
}
