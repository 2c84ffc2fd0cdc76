package main

import (
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	wordmahttp "github.com/fwojciec/wordma/http"
)

// Run executes the serve command.
func (c *ServeCmd) Run(deps *Dependencies) error {
	addr := c.Addr
	if addr == "" {
		addr = deps.Addr
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: failed to listen on %s: %s\n", addr, err)
		return err
	}

	server := wordmahttp.NewServer(wordmahttp.WithLogger(deps.Logger))
	server.Sites = deps.Sites
	server.Articles = deps.Articles
	server.Settings = deps.Settings
	server.Guard = deps.Guard

	ctx, stop := signal.NotifyContext(deps.Ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(deps.Stdout, "Listening on http://%s\n", ln.Addr())
	return server.Serve(ctx, ln)
}
