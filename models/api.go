package models

import "time"

// Types exchanged with the upstream game server. The gateway does not
// own any of this data; it relays it to the UI.

type UserInfo struct {
	FirstName        string     `json:"firstName"`
	LastName         string     `json:"lastName"`
	Phone            string     `json:"phone"`
	IsRegistered     bool       `json:"isRegistered"`
	TotalGamesPlayed int        `json:"totalGamesPlayed"`
	TotalGamesWon    int        `json:"totalGamesWon"`
	RegistrationDate *time.Time `json:"registrationDate,omitempty"`
}

type Wallet struct {
	Main  float64 `json:"main"`
	Play  float64 `json:"play"`
	Coins float64 `json:"coins"`
}

type Profile struct {
	User   UserInfo `json:"user"`
	Wallet Wallet   `json:"wallet"`
}

type Transaction struct {
	ID          uint      `json:"id"`
	Type        string    `json:"type"`
	Amount      float64   `json:"amount"`
	Status      string    `json:"status"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Post struct {
	ID      uint   `json:"id"`
	Kind    string `json:"kind"`
	URL     string `json:"url"`
	Caption string `json:"caption"`
	Active  bool   `json:"active"`
}

type DepositEntry struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"userId"`
	Amount    float64   `json:"amount"`
	Reference string    `json:"reference"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

type WithdrawalEntry struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"userId"`
	Amount    float64   `json:"amount"`
	Account   string    `json:"account"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

type StatsToday struct {
	TotalPlayers int     `json:"totalPlayers"`
	SystemCut    float64 `json:"systemCut"`
}

type RevenueDay struct {
	Day     string  `json:"day"`
	Revenue float64 `json:"revenue"`
}

type LeaderboardEntry struct {
	Rank   int    `json:"rank"`
	Name   string `json:"name"`
	Wins   int    `json:"wins"`
	Amount float64 `json:"amount"`
}
