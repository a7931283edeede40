// cmd/preflight/main.go
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/nkravets/statuswatch/internal/config"
)

func main() {
	fail := func(msg string) {
		fmt.Fprintln(os.Stderr, "✖", msg)
		os.Exit(1)
	}
	warn := func(msg string) { fmt.Fprintln(os.Stderr, "⚠", msg) }
	ok := func(msg string) { fmt.Println("✔", msg) }

	_ = godotenv.Load()

	token := strings.TrimSpace(os.Getenv("TELEGRAM_TOKEN"))
	chatID := strings.TrimSpace(os.Getenv("TELEGRAM_CHAT_ID"))
	apiURL := strings.TrimSpace(os.Getenv("TELEGRAM_API_URL"))
	apiAddr := strings.TrimSpace(os.Getenv("API_ADDR"))

	if token == "" {
		fail("TELEGRAM_TOKEN is empty (the process will refuse to start).")
	}
	if chatID == "" {
		fail("TELEGRAM_CHAT_ID is empty (the process will refuse to start).")
	}
	ok("Telegram credentials present")

	if apiURL != "" {
		warn("TELEGRAM_API_URL overrides the default Bot API endpoint: " + apiURL)
	}

	path := config.Path()
	if _, err := config.Load(path); err != nil {
		fail("config " + path + " is unusable: " + err.Error())
	}
	ok("config " + path + " parses and validates")

	if apiAddr == "" {
		warn("API_ADDR empty — status API disabled.")
	} else {
		ok("API_ADDR=" + apiAddr)
	}

	ok("preflight passed")
}
