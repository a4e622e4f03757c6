package animals

import "strings"

// Action es una operación invocable por nombre sobre una entidad.
// @Enum eat, sleep, meow, bark
type Action string

const (
	ActionEat   Action = "eat"
	ActionSleep Action = "sleep"
	ActionMeow  Action = "meow"
	ActionBark  Action = "bark"
)

func ParseAction(s string) (Action, error) {
	switch a := Action(strings.ToLower(strings.TrimSpace(s))); a {
	case ActionEat, ActionSleep, ActionMeow, ActionBark:
		return a, nil
	default:
		return "", ErrUnsupportedAction
	}
}

// Perform resuelve la acción según la variante concreta de e.
// Eat/Sleep pasan siempre por Behavior, así que un Cat usa su propio Eat.
func Perform(e Entity, action Action) (string, error) {
	switch action {
	case ActionEat, ActionSleep:
		b, ok := e.(Behavior)
		if !ok {
			return "", ErrUnsupportedAction
		}
		if action == ActionEat {
			return b.Eat(), nil
		}
		return b.Sleep(), nil
	case ActionMeow:
		if m, ok := e.(Meower); ok {
			return m.Meow(), nil
		}
	case ActionBark:
		if b, ok := e.(Barker); ok {
			return b.Bark(), nil
		}
	}
	return "", ErrUnsupportedAction
}

// Supports indica si la variante de e responde a action.
func Supports(e Entity, action Action) bool {
	_, err := Perform(e, action)
	return err == nil
}
