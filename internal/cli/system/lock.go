package system

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/nousjournal/nous/internal/cli"
	"github.com/nousjournal/nous/internal/constants"
)

type LockSetCmd struct{}

func (c *LockSetCmd) Run(ctx *cli.Context) error {
	// Changing an existing passcode requires knowing the current one.
	if err := ctx.EnsureUnlocked(); err != nil {
		return err
	}

	var pin, confirm string
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Nouveau code d'accès").
			Description(fmt.Sprintf("Au moins %d caractères.", constants.MinPasscodeLength)).
			EchoMode(huh.EchoModePassword).
			Value(&pin),
		huh.NewInput().
			Title("Confirmer le code").
			EchoMode(huh.EchoModePassword).
			Value(&confirm),
	))
	if err := form.Run(); err != nil {
		return err
	}
	if pin != confirm {
		return fmt.Errorf("passcodes do not match")
	}

	if err := ctx.Guard.Set(pin); err != nil {
		return err
	}
	fmt.Println("Code d'accès enregistré.")
	return nil
}

type LockStatusCmd struct{}

func (c *LockStatusCmd) Run(ctx *cli.Context) error {
	fmt.Println(ctx.Guard.Status())
	return nil
}

type LockClearCmd struct{}

func (c *LockClearCmd) Run(ctx *cli.Context) error {
	if !ctx.Guard.HasLock() {
		fmt.Println("Aucun code d'accès configuré.")
		return nil
	}
	if err := ctx.EnsureUnlocked(); err != nil {
		return err
	}
	if err := ctx.Guard.Clear(); err != nil {
		return err
	}
	fmt.Println("Code d'accès supprimé.")
	return nil
}
