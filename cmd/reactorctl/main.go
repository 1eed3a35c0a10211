// File: cmd/reactorctl/main.go
// Author: coreactor contributors
// License: Apache-2.0
//
// reactorctl launches a reactor runtime from a core mask and keeps it
// running until interrupted. Grounded on the example-command style of
// examples/reactor_echo/main.go: flag parsing, fmt.Fprintf to stderr
// on failure, os.Exit(1) on setup error.

package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/coreactor/coreactor/lifecycle"
	"github.com/coreactor/coreactor/platform"
)

func main() {
	maskFlag := flag.String("mask", "0x1", "core mask, ASCII hex, optionally 0x-prefixed")
	masterFlag := flag.Uint("master", 0, "master core id; start() must be called from this core")
	flag.Parse()

	p := platform.NewMaskPlatform(platform.AvailableCoreMask(), uint32(*masterFlag))
	rt := lifecycle.New(p)

	if err := rt.Init(*maskFlag); err != nil {
		fmt.Fprintf(os.Stderr, "reactorctl: init: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("reactorctl: initialized core_mask=%#x core_count=%d socket_mask=%#x\n",
		rt.GetCoreMask(), rt.GetCoreCount(), rt.SocketMask())

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sig
		fmt.Println("reactorctl: signal received, stopping")
		rt.Stop()
	}()

	if err := p.Pin(uint32(*masterFlag)); err != nil {
		fmt.Fprintf(os.Stderr, "reactorctl: pin master core: %v\n", err)
	}

	if err := rt.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "reactorctl: start: %v\n", err)
		os.Exit(1)
	}

	if err := rt.Fini(); err != nil {
		fmt.Fprintf(os.Stderr, "reactorctl: fini: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("reactorctl: shut down cleanly")
}
