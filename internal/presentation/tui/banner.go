package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the hexcomb ASCII art banner.
func PrintBanner() {
	p := termenv.ColorProfile()
	// Honey-toned gradient, light to dark amber
	s1 := termenv.String(" _                                          _     ").Foreground(p.Color("#fde68a"))
	s2 := termenv.String("| |__    ___ __  __  ___   ___   _ __ ___  | |__  ").Foreground(p.Color("#fcd34d"))
	s3 := termenv.String("| '_ \\  / _ \\\\ \\/ / / __| / _ \\ | '_ ` _ \\ | '_ \\ ").Foreground(p.Color("#fbbf24"))
	s4 := termenv.String("| | | ||  __/ >  < | (__ | (_) || | | | | || |_) |").Foreground(p.Color("#f59e0b"))
	s5 := termenv.String("|_| |_| \\___|/_/\\_\\ \\___| \\___/ |_| |_| |_||_.__/ ").Foreground(p.Color("#d97706"))

	fmt.Println()
	fmt.Println(s1)
	fmt.Println(s2)
	fmt.Println(s3)
	fmt.Println(s4)
	fmt.Println(s5)
	fmt.Println()
}
