package demo

import (
	"fmt"
	"io"

	"pet-behavior-demo/internal/domain/animals"
	"pet-behavior-demo/internal/platform/logger"
)

// Runner ejecuta un Roster escribiendo una línea por invocación en out.
type Runner struct {
	out io.Writer
	log logger.Logger
}

func NewRunner(out io.Writer, log logger.Logger) *Runner {
	if log == nil {
		log = logger.Nop()
	}
	return &Runner{out: out, log: log}
}

func (r *Runner) Run(roster Roster) error {
	for _, sc := range roster.Scenes {
		log := r.log.With(map[string]any{"scene": sc.Name})

		lines := 0
		for i, st := range sc.Steps {
			n, err := r.runStep(st)
			lines += n
			if err != nil {
				log.Error("step failed", map[string]any{"step": i, "err": err})
				return fmt.Errorf("scene %q step #%d: %w", sc.Name, i, err)
			}
		}

		log.Debug("scene done", map[string]any{"lines": lines})
	}
	return nil
}

func (r *Runner) runStep(st Step) (int, error) {
	switch {
	case st.Entity != nil:
		// Se construye como Entity: el dispatch no conoce la variante concreta.
		e, err := animals.Build(st.Entity.input())
		if err != nil {
			return 0, err
		}
		for i, raw := range st.Actions {
			a, err := animals.ParseAction(raw)
			if err != nil {
				return i, err
			}
			line, err := animals.Perform(e, a)
			if err != nil {
				return i, err
			}
			if err := r.println(line); err != nil {
				return i, err
			}
		}
		return len(st.Actions), nil

	case len(st.Identifiers) > 0:
		for i, name := range st.Identifiers {
			if err := r.println(describeIdentifier(name, st.Value)); err != nil {
				return i, err
			}
		}
		return len(st.Identifiers), nil

	default:
		if err := r.println(st.Say); err != nil {
			return 0, err
		}
		return 1, nil
	}
}

func (r *Runner) println(line string) error {
	_, err := fmt.Fprintln(r.out, line)
	return err
}
