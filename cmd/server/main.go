package main

import "sitepay/internal/app/server"

func main() {
	server.Run()
}
