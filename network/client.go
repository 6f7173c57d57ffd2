// Package network connects the front-end to an authoritative arena server.
package network

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/ibaryshnikov/game-design/shared/messages"
	"github.com/leap-fish/necs/esync"
	"github.com/leap-fish/necs/router"
	"github.com/leap-fish/necs/transports"
)

type ClientState int

const (
	StateDisconnected ClientState = iota
	StateConnecting
	StateConnected
	StateJoinedGame
	StateError
)

const writeTimeout = 2 * time.Second

var errNotConnected = errors.New("not connected")

// Client manages a WebSocket connection to the game server. Router callbacks
// run on necs goroutines, so everything they touch sits behind mu or in a
// mailbox.
type Client struct {
	mu        sync.RWMutex
	state     ClientState
	lastError error
	conn      *websocket.Conn
	session   messages.JoinAccepted // Zero until the server accepts the join

	snapshots *mailbox[esync.WorldSnapshot]
	combat    *mailbox[messages.CombatEvent]
	match     *mailbox[messages.MatchStateChangeEvent]
}

func NewClient() *Client {
	return &Client{
		snapshots: newMailbox[esync.WorldSnapshot](1),
		combat:    newMailbox[messages.CombatEvent](16),
		match:     newMailbox[messages.MatchStateChangeEvent](4),
	}
}

// Connect dials address in the background and joins once the socket is up.
// The session token of an earlier join is presented so a reconnecting player
// gets the hero back.
func (c *Client) Connect(address, version, playerName string) {
	c.mu.Lock()
	c.state = StateConnecting
	c.lastError = nil
	join := messages.JoinRequest{
		Version:      version,
		PlayerName:   playerName,
		SessionToken: c.session.SessionToken,
	}
	c.mu.Unlock()

	c.registerHandlers(join)

	go func() {
		transport := transports.NewWsClientTransport("ws://" + address)
		err := transport.Start(func(conn *websocket.Conn) {
			c.mu.Lock()
			c.conn = conn
			c.mu.Unlock()
		})
		if err != nil {
			c.fail(fmt.Errorf("connection failed: %w", err))
		}
	}()
}

func (c *Client) registerHandlers(join messages.JoinRequest) {
	router.OnConnect(func(_ *router.NetworkClient) {
		log.Println("[client] connected to server")
		c.setState(StateConnected)
		if err := c.SendMessage(join); err != nil {
			c.fail(fmt.Errorf("send join request: %w", err))
		}
	})

	router.On(func(_ *router.NetworkClient, msg messages.JoinAccepted) {
		log.Printf("[client] joined %s: hero=%d tickRate=%d controls=%t",
			msg.ServerName, msg.NetworkID, msg.TickRate, msg.Controls)
		c.mu.Lock()
		c.session = msg
		c.state = StateJoinedGame
		c.mu.Unlock()
	})

	router.On(func(_ *router.NetworkClient, msg messages.JoinRejected) {
		c.fail(fmt.Errorf("join rejected: %s", msg.Reason))
	})

	router.On(func(_ *router.NetworkClient, snapshot esync.WorldSnapshot) {
		c.snapshots.push(snapshot)
	})
	router.On(func(_ *router.NetworkClient, evt messages.CombatEvent) {
		c.combat.push(evt)
	})
	router.On(func(_ *router.NetworkClient, evt messages.MatchStateChangeEvent) {
		c.match.push(evt)
	})

	router.OnDisconnect(func(_ *router.NetworkClient, err error) {
		log.Printf("[client] disconnected: %v", err)
		c.mu.Lock()
		if c.state != StateError {
			c.state = StateDisconnected
		}
		c.conn = nil
		c.mu.Unlock()
	})

	router.OnError(func(_ *router.NetworkClient, err error) {
		log.Printf("[client] error: %v", err)
	})
}

// Disconnect closes the socket and drops every router handler.
func (c *Client) Disconnect() {
	c.mu.Lock()
	conn := c.conn
	c.state = StateDisconnected
	c.conn = nil
	c.mu.Unlock()

	if conn != nil {
		_ = conn.CloseNow()
	}
	router.ResetRouter()
}

// SendMessage serializes msg with the router codec and writes it.
func (c *Client) SendMessage(msg any) error {
	c.mu.RLock()
	conn := c.conn
	c.mu.RUnlock()
	if conn == nil {
		return errNotConnected
	}

	payload, err := router.Serialize(msg)
	if err != nil {
		return fmt.Errorf("serialize %T: %w", msg, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()
	return conn.Write(ctx, websocket.MessageBinary, payload)
}

func (c *Client) State() ClientState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

func (c *Client) LastError() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastError
}

// Session returns the server's answer to the join, zero before it arrives.
func (c *Client) Session() messages.JoinAccepted {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.session
}

// Controls reports whether this client drives the hero. Spectators only watch.
func (c *Client) Controls() bool { return c.Session().Controls }

func (c *Client) TickRate() int { return c.Session().TickRate }

// LatestSnapshot returns the newest WorldSnapshot since the last call, or nil.
func (c *Client) LatestSnapshot() *esync.WorldSnapshot {
	snaps := c.snapshots.drain()
	if len(snaps) == 0 {
		return nil
	}
	return &snaps[len(snaps)-1]
}

// DrainCombatEvents returns all pending combat events, non-blocking.
func (c *Client) DrainCombatEvents() []messages.CombatEvent {
	return c.combat.drain()
}

// DrainMatchEvents returns all pending match state changes, non-blocking.
func (c *Client) DrainMatchEvents() []messages.MatchStateChangeEvent {
	return c.match.drain()
}

func (c *Client) setState(s ClientState) {
	c.mu.Lock()
	c.state = s
	c.mu.Unlock()
}

func (c *Client) fail(err error) {
	log.Printf("[client] %v", err)
	c.mu.Lock()
	c.state = StateError
	c.lastError = err
	c.mu.Unlock()
}

// mailbox is a bounded queue that drops its oldest item when full, so the
// newest state always gets through.
type mailbox[T any] struct {
	ch chan T
}

func newMailbox[T any](size int) *mailbox[T] {
	return &mailbox[T]{ch: make(chan T, size)}
}

func (m *mailbox[T]) push(v T) {
	for {
		select {
		case m.ch <- v:
			return
		default:
		}
		select {
		case <-m.ch:
		default:
		}
	}
}

func (m *mailbox[T]) drain() []T {
	var out []T
	for {
		select {
		case v := <-m.ch:
			out = append(out, v)
		default:
			return out
		}
	}
}
