package domain

import "errors"

// ErrLayerCount is returned when a puzzle declares fewer than one layer.
var ErrLayerCount = errors.New("layer count must be at least 1")

// ErrSymbolCount is returned when the symbol stream length does not match the layer count.
var ErrSymbolCount = errors.New("symbol count does not match layer count")

// ErrInvalidSymbol is returned when input contains a byte outside the A-Z alphabet.
var ErrInvalidSymbol = errors.New("symbol outside A-Z alphabet")

// ErrResultNotFound is returned when a result cannot be found in a cache.
var ErrResultNotFound = errors.New("result not found")
