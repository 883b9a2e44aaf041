package main

import "errors"

var (
	errPlayers = errors.New("--players must be > 0")
	errGroup   = errors.New("--group must be best, average or worst")
)
