package main

import (
	"context"

	"github.com/bjulian5/menubar/cmd"
)

func main() {
	ctx := context.Background()
	cmd.Execute(ctx)
}
