package main

import (
	"go.brendoncarroll.net/star"

	"myceliumweb.org/church/churchcmd"
)

func main() {
	star.Main(churchcmd.Root())
}
