//go:build !ixlistdebug

package ixlist

const debug = false

func invariant(cond bool, msg string) {}
