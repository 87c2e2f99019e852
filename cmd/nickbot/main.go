package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/glotchimo/nickbot/internal/bot"
	"github.com/glotchimo/nickbot/internal/config"
)

var VERSION = "dev"

func main() {
	conf, err := config.Load()
	if err != nil {
		panic(err)
	}

	l := bot.NewLogger(conf.Debug).With("version", VERSION)

	b, err := bot.NewBot(conf, l)
	if err != nil {
		l.Error("error starting bot", "error", err)
		os.Exit(1)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-stop:
		l.Info("shutting down", "signal", sig.String())
		b.Close()
	case err := <-b.Fatal():
		l.Error("fatal error", "error", err)
		b.Close()
		os.Exit(1)
	}
}
