package game

import "errors"

var (
	ErrNoSave       = errors.New("no save file found")
	ErrUnknownRoom  = errors.New("unknown room")
	ErrUnknownAsset = errors.New("unknown asset")
	ErrNotPlaying   = errors.New("no game in progress")
)
