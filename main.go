package main

import (
	"github.com/DeltaPlay/DeltaPlay-Backend/api"
	"github.com/DeltaPlay/DeltaPlay-Backend/utils"
)

func main() {
	server := api.NewServer(utils.EnvPath)
	server.Start()
}
