package lesson

import "time"

// Session is the server-side record of one question/answer dialogue,
// keyed by an opaque token handed back to the client.
type Session struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	Turns     []Turn    `json:"turns"`
}

// Turn is one completed question/answer exchange within a session.
type Turn struct {
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	CreatedAt time.Time `json:"createdAt"`
}
