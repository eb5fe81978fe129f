//go:build ixlistdebug

package ixlist

const debug = true

func invariant(cond bool, msg string) {
	if !cond {
		panic("ixlist: invariant violated: " + msg)
	}
}
