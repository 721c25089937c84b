package cli

import (
	"context"
	"os"
	"strconv"

	"healthchat/internal/client/models"
)

// WhoAmI prints the current user from session state. No network call; the
// state is whatever the controller last reconciled.
func (a *App) WhoAmI(ctx context.Context) error {
	st := a.session.State()
	if !st.Authenticated {
		printlnFn("Not signed in.")
		return nil
	}
	printlnFn(renderProfile(st.User))
	return nil
}

// UpdateProfile interactively collects a partial profile change. Empty
// answers keep the current value and are left out of the request entirely.
func (a *App) UpdateProfile(ctx context.Context) error {
	update := models.ProfileUpdate{}

	fullName, err := getSimpleText(a.reader, "Full name (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	if fullName != "" {
		update.FullName = &fullName
	}

	ageText, err := getSimpleText(a.reader, "Age (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	if ageText != "" {
		age, err := strconv.Atoi(ageText)
		if err != nil {
			printlnFn("Age must be a number.")
			return err
		}
		update.Age = &age
	}

	gender, err := getSimpleText(a.reader, "Gender (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	if gender != "" {
		update.Gender = &gender
	}

	bloodType, err := getSimpleText(a.reader, "Blood type (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	if bloodType != "" {
		update.BloodType = &bloodType
	}

	if err := a.session.UpdateProfile(ctx, update); err != nil {
		printlnFn("Profile update failed:", err.Error())
		return err
	}

	printlnFn("Profile updated.")
	return nil
}
