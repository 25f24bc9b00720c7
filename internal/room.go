package internal

// Methods (Room Struct)
//
// Callers must hold Room.Mu (read or write as appropriate); none of these
// lock on their own.

func (r *Room) PlayerByID(id string) *Player {
	for _, player := range r.Players {
		if player.ID == id {
			return player
		}
	}
	return nil
}

func (r *Room) PlayerByName(name string) *Player {
	for _, player := range r.Players {
		if player.Name == name {
			return player
		}
	}
	return nil
}

func (r *Room) PlayerByClient(c *Client) *Player {
	for _, player := range r.Players {
		if player.Client == c {
			return player
		}
	}
	return nil
}

func (r *Room) EvidenceByID(id string) *Evidence {
	for _, evidence := range r.Game.Evidences {
		if evidence.ID == id {
			return evidence
		}
	}
	return nil
}

// RosterSnapshot copies the player list for broadcasting, preserving join
// order.
func (r *Room) RosterSnapshot() []*Player {
	players := make([]*Player, 0, len(r.Players))
	for _, player := range r.Players {
		players = append(players, player.ToPublicPlayer())
	}
	return players
}

// EvidenceSnapshot copies the evidence list for broadcasting, preserving
// submission order.
func (r *Room) EvidenceSnapshot() []*Evidence {
	evidences := make([]*Evidence, 0, len(r.Game.Evidences))
	for _, evidence := range r.Game.Evidences {
		copied := *evidence
		evidences = append(evidences, &copied)
	}
	return evidences
}

// ScoreSnapshot maps player id to current score for broadcasting.
func (r *Room) ScoreSnapshot() map[string]int {
	scores := make(map[string]int, len(r.Players))
	for _, player := range r.Players {
		scores[player.ID] = player.Score
	}
	return scores
}

// ClientSnapshot collects every live connection in the room, host first.
func (r *Room) ClientSnapshot() []*Client {
	clients := make([]*Client, 0, len(r.Players)+1)
	if r.Host != nil {
		clients = append(clients, r.Host)
	}
	for _, player := range r.Players {
		if player.Client != nil {
			clients = append(clients, player.Client)
		}
	}
	return clients
}
