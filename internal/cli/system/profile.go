package system

import (
	"fmt"

	"github.com/nousjournal/nous/internal/cli"
	"github.com/nousjournal/nous/internal/utils"
)

type ProfileSetCmd struct {
	Name          string   `help:"Display name used in messages and exports."`
	Latitude      *float64 `help:"Latitude for the weather capture."`
	Longitude     *float64 `help:"Longitude for the weather capture."`
	Timezone      string   `help:"IANA timezone (e.g. Europe/Paris)."`
	Notifications *bool    `help:"Enable or disable notifications."`
}

func (c *ProfileSetCmd) Validate() error {
	if c.Timezone != "" {
		if _, err := utils.LoadLocation(c.Timezone); err != nil {
			return fmt.Errorf("unknown timezone %q", c.Timezone)
		}
	}
	if c.Latitude != nil && (*c.Latitude < -90 || *c.Latitude > 90) {
		return fmt.Errorf("latitude must be between -90 and 90")
	}
	if c.Longitude != nil && (*c.Longitude < -180 || *c.Longitude > 180) {
		return fmt.Errorf("longitude must be between -180 and 180")
	}
	return nil
}

func (c *ProfileSetCmd) Run(ctx *cli.Context) error {
	if err := ctx.EnsureUnlocked(); err != nil {
		return err
	}

	profile := ctx.Store.GetProfile()
	if c.Name != "" {
		profile.Name = c.Name
	}
	if c.Latitude != nil {
		profile.Latitude = *c.Latitude
	}
	if c.Longitude != nil {
		profile.Longitude = *c.Longitude
	}
	if c.Timezone != "" {
		profile.Timezone = c.Timezone
	}
	if c.Notifications != nil {
		profile.NotificationsEnabled = *c.Notifications
	}

	if err := ctx.Store.SaveProfile(profile); err != nil {
		return err
	}
	fmt.Println("Profil mis à jour.")
	return nil
}

type ProfileShowCmd struct{}

func (c *ProfileShowCmd) Run(ctx *cli.Context) error {
	if err := ctx.EnsureUnlocked(); err != nil {
		return err
	}

	profile := ctx.Store.GetProfile()
	fmt.Printf("Nom            : %s\n", orDash(profile.Name))
	if profile.HasCoordinates() {
		fmt.Printf("Coordonnées    : %.4f, %.4f\n", profile.Latitude, profile.Longitude)
	} else {
		fmt.Println("Coordonnées    : –")
	}
	fmt.Printf("Fuseau horaire : %s\n", orDash(profile.Timezone))
	fmt.Printf("Notifications  : %v\n", profile.NotificationsEnabled)
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "–"
	}
	return s
}
