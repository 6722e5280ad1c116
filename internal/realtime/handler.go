package realtime

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"porter-saathi/internal/assistant"
	"porter-saathi/pkg/log"
)

const msgProcessingFailed = "Sorry, I'm having trouble processing your request. Please try again."

// Handler upgrades /ws requests and answers voice commands and emergency
// alerts over the socket.
type Handler struct {
	hub      *Hub
	uc       assistant.UseCase
	l        log.Logger
	upgrader websocket.Upgrader
}

func NewHandler(l log.Logger, hub *Hub, uc assistant.UseCase) *Handler {
	return &Handler{
		hub: hub,
		uc:  uc,
		l:   l,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// Serve godoc
// @Summary     Real-time channel
// @Description WebSocket endpoint. Send {"type":"voice-command"} or {"type":"emergency-alert"} frames.
// @Tags        Realtime
// @Router      /ws [GET]
func (h *Handler) Serve(c *gin.Context) {
	ctx := c.Request.Context()

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.l.Warnf(ctx, "realtime.Serve: upgrade: %v", err)
		return
	}

	cl := newClient(conn)
	h.hub.register(cl)
	defer h.hub.unregister(cl)
	go cl.writePump()

	h.l.Infof(ctx, "realtime.Serve: client connected (%d online)", h.hub.Len())
	h.readPump(context.WithoutCancel(ctx), cl)
}

func (h *Handler) readPump(ctx context.Context, cl *client) {
	cl.conn.SetReadLimit(maxMessageSize)
	_ = cl.conn.SetReadDeadline(time.Now().Add(pongWait))
	cl.conn.SetPongHandler(func(string) error {
		return cl.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := cl.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.l.Warnf(ctx, "realtime.readPump: %v", err)
			}
			return
		}
		_ = cl.conn.SetReadDeadline(time.Now().Add(pongWait))

		msgType, payload := h.dispatch(ctx, data)
		frame, err := encode(msgType, payload)
		if err != nil {
			h.l.Errorf(ctx, "realtime.readPump: %v", err)
			continue
		}
		if !cl.enqueue(frame) {
			return
		}
	}
}

// dispatch handles one inbound frame and returns the reply frame.
func (h *Handler) dispatch(ctx context.Context, data []byte) (string, any) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return TypeError, errorPayload{Message: "invalid frame"}
	}

	switch env.Type {
	case TypeVoiceCommand:
		var cmd voiceCommand
		if err := json.Unmarshal(env.Payload, &cmd); err != nil || cmd.DriverID == "" {
			return TypeError, errorPayload{Message: "voice-command needs driverId and query"}
		}
		resp, err := h.uc.ProcessQuery(ctx, assistant.Request{
			DriverID: cmd.DriverID,
			Query:    cmd.Query,
			Language: cmd.Language,
		})
		if err != nil {
			h.l.Errorf(ctx, "realtime.dispatch: uc.ProcessQuery: %v", err)
			return TypeVoiceResponse, reply{Response: msgProcessingFailed, Type: string(assistant.KindText), Suggestions: map[string]string{}}
		}
		return TypeVoiceResponse, newReply(resp)

	case TypeEmergencyAlert:
		var a emergencyAlert
		if err := json.Unmarshal(env.Payload, &a); err != nil || a.DriverID == "" {
			return TypeError, errorPayload{Message: "emergency-alert needs driverId"}
		}
		input := assistant.EmergencyInput{
			DriverID: a.DriverID,
			Location: a.Location,
			Type:     a.EmergencyType,
		}
		if ts, err := time.Parse(time.RFC3339, a.Timestamp); err == nil {
			input.Timestamp = ts
		}
		resp, err := h.uc.RaiseEmergency(ctx, input)
		if err != nil {
			h.l.Errorf(ctx, "realtime.dispatch: uc.RaiseEmergency: %v", err)
			return TypeEmergencyAck, reply{Response: msgProcessingFailed, Type: string(assistant.KindText), Suggestions: map[string]string{}}
		}
		return TypeEmergencyAck, newReply(resp)

	default:
		return TypeError, errorPayload{Message: "unknown message type " + env.Type}
	}
}

func newReply(r assistant.Response) reply {
	suggestions := r.Suggestions
	if suggestions == nil {
		suggestions = map[string]string{}
	}
	return reply{
		Response:    r.Text,
		Type:        string(r.Kind),
		AudioURL:    r.AudioURL,
		Suggestions: suggestions,
	}
}
