// Package viz is the terminal backend. It rasterises frames onto a braille
// dot grid and runs them through a Bubble Tea program, with a lipgloss
// sidebar that charts the population's mean radius.
//
// Keys follow the desktop bindings; ctrl+c also quits. Braille dots carry no
// colour, so particles are drawn in the theme's plot colour.
package viz
