package websocket

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

func (that *Server) handleState(_ context.Context, sess *session, msg *Message) error {
	return that.sendGame(sess, msg.Action)
}

func (that *Server) handleTurn(ctx context.Context, sess *session, msg *Message) error {
	log := that.logger.With("method", "handleTurn", "session", sess.id)

	var payloadReq TurnPayload
	if err := json.Unmarshal(msg.Payload, &payloadReq); err != nil || payloadReq.Cell == nil {
		log.Debug("cell is missing in payload", "error", err)
		return that.sendErrorResponse(sess, msg.Action, "cell is required")
	}

	if !sess.game.MakeTurn(ctx, *payloadReq.Cell) {
		log.Debug("turn ignored", "cell", *payloadReq.Cell)
	}

	return that.sendGame(sess, msg.Action)
}

func (that *Server) handleJump(_ context.Context, sess *session, msg *Message) error {
	log := that.logger.With("method", "handleJump", "session", sess.id)

	var payloadReq JumpPayload
	if err := json.Unmarshal(msg.Payload, &payloadReq); err != nil || payloadReq.Step == nil {
		log.Debug("step is missing in payload", "error", err)
		return that.sendErrorResponse(sess, msg.Action, "step is required")
	}

	if !sess.game.JumpTo(*payloadReq.Step) {
		return that.sendErrorResponse(sess, msg.Action, "step is out of range")
	}

	return that.sendGame(sess, msg.Action)
}

func (that *Server) handleReset(_ context.Context, sess *session, msg *Message) error {
	sess.game.Reset()

	return that.sendGame(sess, msg.Action)
}

func (that *Server) sendGame(sess *session, action string) error {
	return that.sendMessage(sess, action, ResponsePayload{
		Session: sess.id,
		Game:    sess.game.State(),
	})
}

func (that *Server) sendMessage(sess *session, action string, payload ResponsePayload) error {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	response := Message{
		Action:  action,
		Payload: payloadBytes,
	}

	if err = sess.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return fmt.Errorf("failed to set write deadline: %w", err)
	}

	if err = sess.conn.WriteJSON(response); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

func (that *Server) sendErrorResponse(sess *session, action, errorMsg string) error {
	payload := ResponsePayload{Error: errorMsg}
	if err := that.sendMessage(sess, action, payload); err != nil {
		return fmt.Errorf("failed to send error response: %w", err)
	}

	return nil
}
