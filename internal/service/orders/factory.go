package orders

import (
	"context"
	"strings"
)

type actionFunc func(context.Context, Event) error

type actionFactory struct {
	byEvent map[string]actionFunc
}

func newActionFactory(onCreated, onDeclined actionFunc) *actionFactory {
	return &actionFactory{
		byEvent: map[string]actionFunc{
			"created":  onCreated,
			"declined": onDeclined,
			"reassign": onDeclined,
		},
	}
}

func (f *actionFactory) get(event string) (actionFunc, bool) {
	event = strings.ToLower(strings.TrimSpace(event))
	fn, ok := f.byEvent[event]
	return fn, ok
}
