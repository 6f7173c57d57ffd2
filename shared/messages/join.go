package messages

import "github.com/leap-fish/necs/esync"

// JoinRequest is sent by a client after connecting to request joining the game.
type JoinRequest struct {
	Version      string
	PlayerName   string
	SessionToken string // Token from an earlier JoinAccepted, to reclaim the hero
}

// JoinAccepted is sent by the server when a client's join request is accepted.
type JoinAccepted struct {
	NetworkID    esync.NetworkId // Hero entity when Controls is set
	SessionToken string
	ServerName   string
	Arena        string
	TickRate     int
	Controls     bool // False for spectators
}

// JoinRejected is sent by the server when a client's join request is rejected.
type JoinRejected struct {
	Reason string
}
