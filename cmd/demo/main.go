package main

import (
	"bufio"
	"os"

	"pet-behavior-demo/internal/demo"
	"pet-behavior-demo/internal/platform/logger"
)

// Sin flags ni env: corre la secuencia embebida y termina siempre con status 0.
// Los errores van a stderr vía logger.
func main() {
	log := logger.New(logger.Options{Level: logger.Warn, Output: os.Stderr})

	out := bufio.NewWriter(os.Stdout)
	defer func() {
		if err := out.Flush(); err != nil {
			log.Error("flush stdout", map[string]any{"err": err})
		}
	}()

	roster, err := demo.DefaultRoster()
	if err != nil {
		log.Error("load roster", map[string]any{"err": err})
		return
	}

	if err := demo.NewRunner(out, log).Run(roster); err != nil {
		log.Error("demo failed", map[string]any{"err": err})
	}
}
