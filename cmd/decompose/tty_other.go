//go:build !(linux || darwin || dragonfly || freebsd || netbsd || openbsd)

package main

func is_terminal(fd int) bool { return false }
