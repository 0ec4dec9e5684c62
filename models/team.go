package models

type TeamPool string

const (
	PoolA TeamPool = "A"
	PoolB TeamPool = "B"
	PoolC TeamPool = "C"
)

func (p TeamPool) Valid() bool {
	switch p {
	case PoolA, PoolB, PoolC:
		return true
	}
	return false
}

type Team struct {
	Name    string   `json:"name" db:"team_name"`
	Player1 string   `json:"player1" db:"player1"`
	Player2 string   `json:"player2" db:"player2"`
	Pool    TeamPool `json:"pool" db:"pool"`

	LogoKey *string `json:"-" db:"logo_key"`
	LogoURL *string `json:"logo_url,omitempty" db:"-"`
}
