package theme

import (
	"image/color"
)

// Theme defines the color palette for the board and its toolbars.
type Theme struct {
	Name string

	// Canvas
	Background color.RGBA // Area behind every entity
	Foreground color.RGBA // Default stroke, rectangle and text color

	// Toolbars
	ToolbarBackground  color.RGBA
	ButtonHover        color.RGBA
	ButtonSelected     color.RGBA
	ButtonText         color.RGBA
	ButtonTextSelected color.RGBA

	// Overlays
	Hover       color.RGBA // Outline of the entity under the cursor
	Selection   color.RGBA // Outline and handles of the selected entity
	EraserBrush color.RGBA
	Message     color.RGBA // Transient status line
}

// Default returns the hardcoded dark palette (fallback).
func Default() *Theme {
	return &Theme{
		Name:               "dark",
		Background:         color.RGBA{20, 18, 24, 255},
		Foreground:         color.RGBA{255, 255, 255, 255},
		ToolbarBackground:  color.RGBA{35, 35, 41, 255},
		ButtonHover:        color.RGBA{49, 48, 59, 255},
		ButtonSelected:     color.RGBA{200, 122, 255, 255},
		ButtonText:         color.RGBA{255, 255, 255, 255},
		ButtonTextSelected: color.RGBA{0, 0, 0, 255},
		Hover:              color.RGBA{64, 62, 106, 255},
		Selection:          color.RGBA{200, 122, 255, 255},
		EraserBrush:        color.RGBA{150, 0, 150, 190},
		Message:            color.RGBA{255, 255, 255, 255},
	}
}
