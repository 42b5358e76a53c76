package main

import "github.com/thereayou/devlink/internal/server"

func main() {
	server.NewServer().Run()
}
