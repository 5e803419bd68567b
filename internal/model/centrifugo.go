package model

import "github.com/golang-jwt/jwt/v5"

type CentrifugoEvent struct {
	Method string      `json:"method"`
	Params interface{} `json:"params"`
}

type CentrifugoEventParams struct {
	Channel string     `json:"channel"`
	Data    LiveUpdate `json:"data"`
}

// LiveUpdate is the fire-and-forget hint broadcast after every successful
// mutation: connected clients re-fetch the named URL.
type LiveUpdate struct {
	URL string `json:"url"`
}

type CentrifugoConnectClaims struct {
	jwt.RegisteredClaims
}

type CentrifugoSubscribeClaims struct {
	jwt.RegisteredClaims

	// Centrifugo-specific fields
	Channel string `json:"channel"`
	Client  string `json:"client,omitempty"`

	// scoping claims checked on proxy callbacks
	UserID          string `json:"user_id"`
	CourseReference string `json:"course_reference"`
}
