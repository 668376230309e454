package common

import (
	"github.com/getseabird/gallery/api"
	"github.com/getseabird/gallery/internal/pubsub"
)

type State struct {
	Preferences pubsub.Property[api.Preferences]
}

func NewState() (*State, error) {
	prefs, err := api.LoadPreferences()
	if err != nil {
		return nil, err
	}
	prefs.Defaults()

	return &State{
		Preferences: pubsub.NewProperty(*prefs),
	}, nil
}
