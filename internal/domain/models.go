package domain

import (
	"time"

	"sports-data-service/internal/domain/games"
	"sports-data-service/internal/domain/leagues"
	"sports-data-service/internal/domain/standings"
	"sports-data-service/internal/domain/teams"
)

// Dataset is the complete catalog served by the service. It is built once and treated as an
// immutable snapshot; changes are made by building a new Dataset and replacing the old one.
type Dataset struct {
	GeneratedAt time.Time                `json:"generatedAt"`
	Seed        uint64                   `json:"seed"`
	Teams       []teams.Team             `json:"teams"`
	Leagues     []leagues.League         `json:"leagues"`
	Games       []games.Game             `json:"games"`
	Standings   []standings.TeamStanding `json:"standings"`
}

// Clone returns a copy whose slices do not alias the receiver's.
func (d Dataset) Clone() Dataset {
	out := d
	out.Teams = append([]teams.Team(nil), d.Teams...)
	out.Leagues = append([]leagues.League(nil), d.Leagues...)
	out.Standings = append([]standings.TeamStanding(nil), d.Standings...)
	if d.Games != nil {
		out.Games = make([]games.Game, len(d.Games))
		for i, g := range d.Games {
			out.Games[i] = g.Clone()
		}
	}
	return out
}

// IsEmpty reports whether the dataset has no games.
func (d Dataset) IsEmpty() bool {
	return len(d.Games) == 0
}
