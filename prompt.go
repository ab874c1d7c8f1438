package main

import (
	"errors"
	"log"
	"strconv"

	"github.com/ncruces/zenity"

	"ripples/internal/config"
)

// askFunc asks the user for a drop count and returns the raw reply.
type askFunc func() (string, error)

// zenityAsk opens the native entry dialog.
func zenityAsk() (string, error) {
	return zenity.Entry(config.PromptText,
		zenity.Title(config.WindowTitle),
		zenity.EntryText(strconv.Itoa(config.DefaultDrops)),
	)
}

// promptDropCount resolves the drop count from the dialog. Invalid or
// missing input falls back to the default with a warning.
func promptDropCount(ask askFunc) int {
	reply, err := ask()
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			log.Printf("Drop prompt cancelled. Defaulting to %d drops.", config.DefaultDrops)
		} else {
			log.Printf("Drop prompt failed: %v. Defaulting to %d drops.", err, config.DefaultDrops)
		}
		return config.DefaultDrops
	}
	n, err := config.DropCountOrDefault(reply)
	if err != nil {
		log.Printf("Invalid input (%v). Defaulting to %d drops.", err, n)
	}
	warnManyDrops(n)
	return n
}

// warnManyDrops logs when n drops will likely miss the frame cadence.
func warnManyDrops(n int) {
	if n > config.ManyDrops {
		log.Printf("%d drops may not keep up with %d frames per second; consider -workers.", n, config.TPS)
	}
}

// resolveDropCount picks the drop count from -drops, -no-prompt or the dialog.
func resolveDropCount(flagValue int, noPrompt bool, ask askFunc) int {
	if flagValue > 0 {
		warnManyDrops(flagValue)
		return flagValue
	}
	if flagValue < 0 {
		log.Printf("-drops %d is not positive. Defaulting to %d drops.", flagValue, config.DefaultDrops)
		return config.DefaultDrops
	}
	if noPrompt || ask == nil {
		return config.DefaultDrops
	}
	return promptDropCount(ask)
}
