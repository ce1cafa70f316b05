package ws

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // solo para desarrollo, restringir en producción
	},
}

func sendJSON(conn *websocket.Conn, data interface{}) {
	msg, err := json.Marshal(data)
	if err != nil {
		log.Println("Error en JSON marshal:", err)
		return
	}
	if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
		log.Println("Error al enviar mensaje:", err)
	}
}

// HandleStatusWebSocket suscribe al cliente a los avisos de cambio
// en la lista de documentos.
func HandleStatusWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Println("Fallo el upgrade de WebSocket:", err)
		return
	}
	H.Register(conn)
	sendJSON(conn, gin.H{"type": "connected"})
}
