package competition

import "fmt"

// Competition is a football competition whose seasons are tracked.
type Competition struct {
	ID            string
	Name          string
	CountryCode   string
	CountryName   string
	CurrentSeason string
	IsDefault     bool
}

func (c Competition) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("competition id is required")
	}
	if c.Name == "" {
		return fmt.Errorf("competition name is required")
	}
	if c.CountryCode == "" {
		return fmt.Errorf("competition country code is required")
	}
	if c.CurrentSeason == "" {
		return fmt.Errorf("competition current season is required")
	}

	return nil
}
