package ws

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"voice-task-management/pkg/log"
)

// Serve godoc
// @Summary     Stream spoken commands
// @Description Upgrades to a websocket. Send {"type":"transcript","text":"...","final":true}
// @Description frames; each final transcript is answered with an outcome frame.
// @Tags        Voice
// @Success     101 {string} string "Switching Protocols"
// @Router      /api/v1/voice/ws [GET]
func (h *handler) Serve(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.l.Warnf(c.Request.Context(), "ws.Serve upgrade: %v", err)
		return
	}
	defer conn.Close()

	sessionID := uuid.NewString()
	ctx, cancel := context.WithCancel(log.WithSessionID(c.Request.Context(), sessionID))
	defer cancel()

	h.metrics.SessionOpened()
	defer h.metrics.SessionClosed()
	h.l.Infof(ctx, "ws.Serve: session opened")

	outbound := make(chan any, outboundQueue)
	writerDone := make(chan struct{})
	go h.writeLoop(ctx, cancel, conn, outbound, writerDone)

	h.send(ctx, outbound, readyFrame{Type: TypeReady, SessionID: sessionID})
	h.readLoop(ctx, conn, outbound)

	cancel()
	<-writerDone
	h.l.Infof(ctx, "ws.Serve: session closed")
}

// writeLoop is the only goroutine writing to conn.
func (h *handler) writeLoop(ctx context.Context, cancel context.CancelFunc, conn *websocket.Conn, outbound <-chan any, done chan<- struct{}) {
	defer close(done)
	for {
		select {
		case <-ctx.Done():
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(time.Second))
			return
		case msg := <-outbound:
			_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := conn.WriteJSON(msg); err != nil {
				h.l.Warnf(ctx, "ws.writeLoop: %v", err)
				cancel()
				// Unblocks the pending ReadMessage in readLoop.
				_ = conn.Close()
				return
			}
			h.metrics.ObserveWSMessage("outbound", frameType(msg))
		}
	}
}

// readLoop interprets final transcripts in arrival order until the peer
// goes away or the session is cancelled.
func (h *handler) readLoop(ctx context.Context, conn *websocket.Conn, outbound chan<- any) {
	conn.SetReadLimit(readLimit)
	_ = conn.SetReadDeadline(time.Now().Add(idleTimeout))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(idleTimeout))
	})

	seq := 0
	for ctx.Err() == nil {
		msgType, data, err := conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.l.Debugf(ctx, "ws.readLoop: %v", err)
			}
			return
		}
		_ = conn.SetReadDeadline(time.Now().Add(idleTimeout))
		if msgType != websocket.TextMessage {
			continue
		}

		frame, err := parseClientFrame(data)
		if err != nil {
			h.metrics.ObserveWSMessage("inbound", "invalid")
			h.send(ctx, outbound, errorFrame{Type: TypeError, Code: CodeInvalidMessage, Detail: err.Error()})
			continue
		}
		h.metrics.ObserveWSMessage("inbound", frame.Type)

		if frame.Type != TypeTranscript {
			h.send(ctx, outbound, errorFrame{Type: TypeError, Code: CodeUnsupported, Detail: frame.Type})
			continue
		}
		if !frame.Final {
			continue
		}

		req, err := frame.toRequest()
		if err != nil {
			h.send(ctx, outbound, errorFrame{Type: TypeError, Code: CodeInvalidMessage, Detail: err.Error()})
			continue
		}

		res, err := h.as.Handle(ctx, req)
		if err != nil {
			h.l.Errorf(ctx, "ws.readLoop as.Handle: %v", err)
			h.send(ctx, outbound, errorFrame{Type: TypeError, Code: CodeFailed, Detail: "the command could not be applied"})
			continue
		}

		seq++
		h.send(ctx, outbound, newOutcomeFrame(seq, res))
	}
}

func (h *handler) send(ctx context.Context, outbound chan<- any, msg any) {
	select {
	case <-ctx.Done():
	case outbound <- msg:
	}
}
