package realtime

import (
	"fmt"
	"net/http"

	"github.com/gorilla/websocket"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/forum-service/internal/config"
	"github.com/s21platform/forum-service/internal/model"
)

type ConnectTokenValidator interface {
	ValidateConnectToken(tokenString string) (*model.ConnectClaims, error)
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// NewHandler upgrades /ws requests and attaches the connection to the
// hub. The connect token is optional: a valid one joins the user's
// personal channel, anything else results in an anonymous connection
// that can still follow thread channels.
func NewHandler(hub *Hub, jwtValidator ConnectTokenValidator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
		logger.AddFuncName("ServeWS")

		userUUID := ""
		if token := r.URL.Query().Get("token"); token != "" {
			claims, err := jwtValidator.ValidateConnectToken(token)
			if err != nil {
				logger.Warn(fmt.Sprintf("rejected connect token: %v", err))
			} else {
				userUUID = claims.Subject
			}
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logger.Error(fmt.Sprintf("failed to upgrade connection: %v", err))
			return
		}

		c := newClient(hub, conn, userUUID)
		if userUUID != "" {
			hub.join(c, model.UserChannel(userUUID))
		}

		go c.writePump()
		go c.readPump()
	}
}
