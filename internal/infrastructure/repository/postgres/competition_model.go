package postgres

import (
	"database/sql"
	"time"
)

type competitionTableModel struct {
	ID            int64          `db:"id"`
	PublicID      string         `db:"public_id"`
	Name          string         `db:"name"`
	CountryCode   string         `db:"country_code"`
	CountryName   sql.NullString `db:"country_name"`
	CurrentSeason string         `db:"current_season"`
	IsDefault     bool           `db:"is_default"`
	CreatedAt     time.Time      `db:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at"`
	DeletedAt     *time.Time     `db:"deleted_at"`
}
