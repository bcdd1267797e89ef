// Package ipc talks to a tiling window manager's IPC WebSocket (GlazeWM
// style): plain-text commands in, JSON messages out. It only covers the
// surface this widget needs — querying focus state and subscribing to
// focus change events.
package ipc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gorilla/websocket"
	"github.com/tanekelly/overline-zebar/internal/model"
)

const (
	msgClientResponse    = "client_response"
	msgEventSubscription = "event_subscription"

	handshakeTimeout = 5 * time.Second
)

// serverMessage is the envelope for every message the window manager sends.
type serverMessage struct {
	MessageType   string          `json:"messageType"`
	ClientMessage string          `json:"clientMessage,omitempty"`
	Data          json.RawMessage `json:"data"`
	Error         string          `json:"error,omitempty"`
	Success       bool            `json:"success"`
}

// focusEvent is the payload of a focus_changed event.
type focusEvent struct {
	EventType string `json:"eventType"`
	model.FocusSnapshot
}

// Client is a connection to the window manager's IPC socket. It is not
// safe for concurrent use; the watch loop owns it exclusively.
type Client struct {
	conn *websocket.Conn
}

// Dial connects to the window manager at the given WebSocket URL,
// e.g. "ws://localhost:6123".
func Dial(url string) (*Client, error) {
	dialer := websocket.Dialer{HandshakeTimeout: handshakeTimeout}
	conn, _, err := dialer.Dial(url, nil)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", url, err)
	}
	return &Client{conn: conn}, nil
}

// Close shuts the connection down.
func (c *Client) Close() error {
	return c.conn.Close()
}

// SetReadDeadline bounds all subsequent reads. Once the deadline passes,
// NextEvent and the query calls fail instead of blocking for the next
// message. A zero time means reads never time out.
func (c *Client) SetReadDeadline(t time.Time) error {
	return c.conn.SetReadDeadline(t)
}

// QueryFocused asks the window manager for its current focus state.
func (c *Client) QueryFocused() (model.FocusSnapshot, error) {
	if err := c.send("query focused"); err != nil {
		return model.FocusSnapshot{}, err
	}
	msg, err := c.await(msgClientResponse)
	if err != nil {
		return model.FocusSnapshot{}, err
	}
	if !msg.Success {
		return model.FocusSnapshot{}, fmt.Errorf("query focused: %s", msg.Error)
	}
	return model.DecodeSnapshot(bytes.NewReader(msg.Data))
}

// SubscribeFocus registers for focus_changed events. Events are then
// delivered through NextEvent.
func (c *Client) SubscribeFocus() error {
	if err := c.send("sub -e focus_changed"); err != nil {
		return err
	}
	msg, err := c.await(msgClientResponse)
	if err != nil {
		return err
	}
	if !msg.Success {
		return fmt.Errorf("subscribe focus_changed: %s", msg.Error)
	}
	return nil
}

// NextEvent blocks until the next focus event arrives and returns the
// snapshot it carries. Non-event messages are skipped.
func (c *Client) NextEvent() (model.FocusSnapshot, error) {
	msg, err := c.await(msgEventSubscription)
	if err != nil {
		return model.FocusSnapshot{}, err
	}
	var ev focusEvent
	if err := json.Unmarshal(msg.Data, &ev); err != nil {
		return model.FocusSnapshot{}, fmt.Errorf("unmarshal focus event: %w", err)
	}
	return ev.FocusSnapshot, nil
}

func (c *Client) send(command string) error {
	if err := c.conn.WriteMessage(websocket.TextMessage, []byte(command)); err != nil {
		return fmt.Errorf("send %q: %w", command, err)
	}
	return nil
}

// await reads messages until one of the wanted type arrives. Interleaved
// messages of other types (e.g. events while waiting for a query
// response) are dropped; the next state update supersedes them anyway.
func (c *Client) await(messageType string) (serverMessage, error) {
	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			return serverMessage{}, fmt.Errorf("read message: %w", err)
		}
		var msg serverMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			return serverMessage{}, fmt.Errorf("unmarshal message: %w", err)
		}
		if msg.MessageType == messageType {
			return msg, nil
		}
	}
}
