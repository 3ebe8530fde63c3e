package main

import (
	"github.com/vaultpay/payout-backend/internal/server"
)

func main() {
	server.Init()
}
